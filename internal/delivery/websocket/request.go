package websocket

const (
	RequestRefresh = "refresh"
	RequestSelect  = "select"
)

type IncomingMessage struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
}
