package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"hotelchat/internal/entity"
)

// ListMessages returns every message the token's owner may see, in whatever
// order the API produces them.
func (c *Client) ListMessages(ctx context.Context, token string) ([]entity.Message, error) {
	var messages []entity.Message
	if err := c.do(ctx, http.MethodGet, "/messages", token, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, token string, req entity.SendMessageRequest) (entity.Message, error) {
	var message entity.Message
	err := c.do(ctx, http.MethodPost, "/messages", token, req, &message)
	return message, err
}

func (c *Client) RespondToMessage(ctx context.Context, token string, messageId int64, response string) (entity.Message, error) {
	var message entity.Message
	body := entity.RespondMessageRequest{Response: response}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/messages/%d", messageId), token, body, &message)
	return message, err
}

func (c *Client) DeleteMessage(ctx context.Context, token string, messageId int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/messages/%d", messageId), token, nil, nil)
}
