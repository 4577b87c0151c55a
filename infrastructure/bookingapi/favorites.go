package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"hotelchat/internal/entity"
)

func (c *Client) ListFavorites(ctx context.Context, token string) ([]entity.Favorite, error) {
	var favorites []entity.Favorite
	if err := c.do(ctx, http.MethodGet, "/favorites", token, nil, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (c *Client) AddFavorite(ctx context.Context, token string, hotelId int64) (entity.Favorite, error) {
	var favorite entity.Favorite
	body := entity.AddFavoriteRequest{HotelId: hotelId}
	err := c.do(ctx, http.MethodPost, "/favorites", token, body, &favorite)
	return favorite, err
}

func (c *Client) RemoveFavorite(ctx context.Context, token string, hotelId int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", hotelId), token, nil, nil)
}
