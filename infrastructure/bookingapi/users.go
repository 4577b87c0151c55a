package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"hotelchat/internal/entity"
)

func (c *Client) ListUsers(ctx context.Context, token string, limit, page int) ([]entity.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	var users []entity.User
	path := fmt.Sprintf("/users?limit=%d&page=%d", limit, page)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
