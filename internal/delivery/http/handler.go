package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"hotelchat/internal/entity"
	"hotelchat/internal/usecase"
	"hotelchat/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Pinger is a backing store /health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HttpHandler struct {
	inboxUc    usecase.InboxUsecase
	messageUc  usecase.MessageUsecase
	favoriteUc usecase.FavoriteUsecase
	hotelUc    usecase.HotelUsecase
	checks     map[string]Pinger
}

func NewHttpHandler(
	inboxUc usecase.InboxUsecase,
	messageUc usecase.MessageUsecase,
	favoriteUc usecase.FavoriteUsecase,
	hotelUc usecase.HotelUsecase,
	checks map[string]Pinger,
) *HttpHandler {
	return &HttpHandler{
		inboxUc:    inboxUc,
		messageUc:  messageUc,
		favoriteUc: favoriteUc,
		hotelUc:    hotelUc,
		checks:     checks,
	}
}

// Method Get /health
func (h *HttpHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			logger.Warn("health: %s: %v", name, err)
			results[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	message := "ok"
	if status != http.StatusOK {
		message = "unavailable"
	}
	writeJSON(w, status, Response{Message: message, Data: results})
}

// Method Get /inbox
func (h *HttpHandler) GetInbox(w http.ResponseWriter, r *http.Request) {
	viewer, token, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	view, err := h.inboxUc.Get(r.Context(), viewer, token)
	if err != nil {
		writeError(w, "Get inbox", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "success", Data: view.ForDisplay()})
}

// Method Get /inbox/conversations/{key}
func (h *HttpHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	viewer, token, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	conv, err := h.inboxUc.Conversation(r.Context(), viewer, token, chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, "Get conversation", err)
		return
	}

	conv.Messages = conv.Chronological()
	writeJSON(w, http.StatusOK, Response{Message: "success", Data: conv})
}

// Method Put /inbox/selection
func (h *HttpHandler) SelectConversation(w http.ResponseWriter, r *http.Request) {
	viewer, _, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	var req entity.SelectConversationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.inboxUc.Select(r.Context(), viewer, req.Key); err != nil {
		writeError(w, "Select conversation", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "success", Data: map[string]string{"selected": req.Key}})
}

// Method Post /messages
func (h *HttpHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	viewer, token, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	var req entity.SendMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	message, err := h.messageUc.Send(r.Context(), viewer, token, req)
	if err != nil {
		writeError(w, "Send message", err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{Message: "message sent", Data: message})
}

// Method Patch /messages/{id}
func (h *HttpHandler) RespondToMessage(w http.ResponseWriter, r *http.Request) {
	viewer, token, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	messageId, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req entity.RespondMessageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	message, err := h.messageUc.Respond(r.Context(), viewer, token, messageId, req.Response)
	if err != nil {
		writeError(w, "Respond to message", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "response sent", Data: message})
}

// Method Delete /messages/{id}
func (h *HttpHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	viewer, token, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	messageId, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.messageUc.Delete(r.Context(), viewer, token, messageId); err != nil {
		writeError(w, "Delete message", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "message deleted"})
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, Response{Message: "invalid " + name})
		return 0, false
	}
	return id, true
}
