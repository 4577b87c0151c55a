package entity

const (
	EventInbox        = "inbox"
	EventInboxChanged = "inbox.changed"
	EventError        = "error"
)

// Event is what the server pushes over a websocket.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}
