package websocket

import (
	"encoding/json"

	"hotelchat/infrastructure/ws"
	"hotelchat/internal/entity"
	"hotelchat/pkg/logger"
)

func encodeEvent(event entity.Event) []byte {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Marshal event error: %v", err)
		return nil
	}
	return data
}

// HubNotifier pushes inbox.changed events through the hub. Clients answer
// with a refresh request, so each inbox is rebuilt with its owner's token.
type HubNotifier struct {
	hub ws.IHub
}

func NewHubNotifier(hub ws.IHub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) InboxChanged(userId int64) {
	if payload := encodeEvent(entity.Event{Type: entity.EventInboxChanged}); payload != nil {
		n.hub.SendToUser(userId, payload)
	}
}
