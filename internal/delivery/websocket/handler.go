package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"hotelchat/infrastructure/ws"
	"hotelchat/internal/entity"
	"hotelchat/internal/usecase"
	"hotelchat/pkg/logger"

	"github.com/gorilla/websocket"
)

type TokenValidator interface {
	ValidateAccessToken(token string) (*entity.TokenClaims, error)
}

type WebsocketHandler struct {
	hub      ws.IHub
	tokens   TokenValidator
	inboxUc  usecase.InboxUsecase
	upgrader websocket.Upgrader
}

func NewWebsocketHandler(hub ws.IHub, tokens TokenValidator, inboxUc usecase.InboxUsecase, allowedOrigin string) *WebsocketHandler {
	return &WebsocketHandler{
		hub:     hub,
		tokens:  tokens,
		inboxUc: inboxUc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowedOrigin == "*" || origin == allowedOrigin
			},
		},
	}
}

func (h *WebsocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokens.ValidateAccessToken(token)
	if err != nil {
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("Upgrade error: %v", err)
		return
	}

	// The request context ends with the handler, the connection outlives it.
	ctx := context.WithoutCancel(r.Context())
	viewer := claims.Viewer()

	client := ws.NewClient(viewer.Id, token, h.hub, conn)
	h.hub.RegisterClient(client)

	go client.WritePump()
	h.pushInbox(ctx, client, viewer)

	client.ReadPump(func(data []byte) {
		h.handleMessage(ctx, client, viewer, data)
	})
}

func (h *WebsocketHandler) handleMessage(ctx context.Context, client *ws.UserClient, viewer entity.Viewer, data []byte) {
	var message IncomingMessage
	if err := json.Unmarshal(data, &message); err != nil {
		logger.Warn("Unknown message: %v", err)
		return
	}

	switch message.Type {
	case RequestRefresh:
		h.pushInbox(ctx, client, viewer)

	case RequestSelect:
		if err := h.inboxUc.Select(ctx, viewer, message.Key); err != nil {
			h.pushError(client, err)
			return
		}
		h.pushInbox(ctx, client, viewer)

	default:
		logger.Warn("Unknown message type %q from user %d", message.Type, viewer.Id)
	}
}

func (h *WebsocketHandler) pushInbox(ctx context.Context, client *ws.UserClient, viewer entity.Viewer) {
	view, err := h.inboxUc.Get(ctx, viewer, client.Token)
	if err != nil {
		logger.Warn("Inbox for user %d error: %v", viewer.Id, err)
		h.pushError(client, err)
		return
	}

	if payload := encodeEvent(entity.Event{Type: entity.EventInbox, Data: view.ForDisplay()}); payload != nil {
		client.Send(payload)
	}
}

func (h *WebsocketHandler) pushError(client *ws.UserClient, err error) {
	message := "failed to load messages, please try again"
	if errors.Is(err, usecase.ErrEmptySelection) {
		message = err.Error()
	}
	if payload := encodeEvent(entity.Event{Type: entity.EventError, Data: message}); payload != nil {
		client.Send(payload)
	}
}
