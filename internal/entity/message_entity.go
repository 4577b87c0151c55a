package entity

import (
	"encoding/json"
	"time"
)

type Message struct {
	Id          int64     `bson:"_id" json:"id"`
	SenderId    int64     `bson:"senderId" json:"senderId"`
	RecipientId int64     `bson:"recipientId" json:"recipientId"`
	HotelId     *int64    `bson:"hotelId,omitempty" json:"hotelId,omitempty"`
	Content     string    `bson:"content" json:"content"`
	Response    string    `bson:"response,omitempty" json:"response,omitempty"`
	SentAt      time.Time `bson:"sentAt" json:"sentAt"`
}

// UnmarshalJSON accepts sentAt as an RFC 3339 string or as epoch
// milliseconds. Anything else, including a missing value, leaves the zero
// time so such messages sort as the oldest.
func (m *Message) UnmarshalJSON(data []byte) error {
	type alias Message
	aux := struct {
		*alias
		SentAt json.RawMessage `json:"sentAt"`
	}{alias: (*alias)(m)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	m.SentAt = parseSentAt(aux.SentAt)
	return nil
}

func parseSentAt(raw json.RawMessage) time.Time {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
			return t
		}
		return time.Time{}
	}

	var millis int64
	if err := json.Unmarshal(raw, &millis); err == nil {
		return time.UnixMilli(millis).UTC()
	}
	return time.Time{}
}

// Text is what a conversation preview shows for the message.
func (m Message) Text() string {
	if m.Content != "" {
		return m.Content
	}
	return m.Response
}

type SendMessageRequest struct {
	RecipientId int64  `json:"recipientId" validate:"required,gt=0"`
	HotelId     *int64 `json:"hotelId,omitempty" validate:"omitempty,gt=0"`
	Content     string `json:"content" validate:"required,max=4000"`
}

type RespondMessageRequest struct {
	Response string `json:"response" validate:"required,max=4000"`
}

type MessageIndexFilter struct {
	ViewerId int64
	Role     Role
	HotelIds []int64
}
