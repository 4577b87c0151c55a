package ws

import (
	"context"

	"hotelchat/pkg/logger"
)

// Hub fans messages out to the connections of a single server.
type Hub struct {
	registry
	Register   chan *UserClient
	Unregister chan *UserClient
	done       chan struct{}
}

func NewHub() IHub {
	return &Hub{
		registry:   newRegistry(),
		Register:   make(chan *UserClient),
		Unregister: make(chan *UserClient),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.Register:
			h.add(client)
			logger.Debug("user %d connected (%s)", client.UserId, client.Id)

		case client := <-h.Unregister:
			if h.remove(client) {
				logger.Debug("user %d disconnected (%s)", client.UserId, client.Id)
			}
		}
	}
}

func (h *Hub) SendToUser(userId int64, message []byte) {
	h.deliver(userId, message)
}

func (h *Hub) GetClientCount() int {
	return h.count()
}

func (h *Hub) RegisterClient(client *UserClient) {
	select {
	case h.Register <- client:
	case <-h.done:
		client.closeSend()
	}
}

func (h *Hub) UnregisterClient(client *UserClient) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}
