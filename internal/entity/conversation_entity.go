package entity

import (
	"sort"
	"time"
)

type Conversation struct {
	Key           string    `json:"key"`
	Title         string    `json:"title"`
	LatestSender  string    `json:"latestSender"`
	LatestMessage string    `json:"latestMessage"`
	LatestSentAt  time.Time `json:"latestSentAt"`
	Messages      []Message `json:"messages"`
}

// Chronological returns the members oldest first. Messages keeps the order
// they were received in.
func (c Conversation) Chronological() []Message {
	out := make([]Message, len(c.Messages))
	copy(out, c.Messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SentAt.Before(out[j].SentAt)
	})
	return out
}

type InboxView struct {
	Conversations []Conversation `json:"conversations"`
	Selected      string         `json:"selected"`
}

// ForDisplay returns a copy of the view with every conversation's messages
// in chronological order.
func (v InboxView) ForDisplay() InboxView {
	out := InboxView{
		Conversations: make([]Conversation, len(v.Conversations)),
		Selected:      v.Selected,
	}
	for i, c := range v.Conversations {
		c.Messages = c.Chronological()
		out.Conversations[i] = c
	}
	return out
}
