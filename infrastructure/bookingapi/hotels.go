package bookingapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"hotelchat/internal/entity"
)

// ListHotels is public on the API side; the token is forwarded when given.
func (c *Client) ListHotels(ctx context.Context, token string, filter entity.HotelIndexFilter) ([]entity.Hotel, error) {
	params := url.Values{}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Location != "" {
		params.Set("location", filter.Location)
	}
	if filter.MinPrice > 0 {
		params.Set("minPrice", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}

	path := "/hotels"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var hotels []entity.Hotel
	if err := c.do(ctx, http.MethodGet, path, token, nil, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// GetHotel is public on the API side; the token is forwarded when given.
func (c *Client) GetHotel(ctx context.Context, token string, hotelId int64) (entity.Hotel, error) {
	var hotel entity.Hotel
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/hotels/%d", hotelId), token, nil, &hotel)
	return hotel, err
}
