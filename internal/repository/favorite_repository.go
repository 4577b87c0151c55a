package repository

import (
	"context"

	"hotelchat/infrastructure/bookingapi"
	"hotelchat/internal/entity"
)

type FavoriteRepository interface {
	Index(ctx context.Context, token string) ([]entity.Favorite, error)
	Create(ctx context.Context, token string, hotelId int64) (entity.Favorite, error)
	Delete(ctx context.Context, token string, hotelId int64) error
}

type apiFavoriteRepository struct {
	client *bookingapi.Client
}

func NewApiFavoriteRepository(client *bookingapi.Client) FavoriteRepository {
	return &apiFavoriteRepository{
		client: client,
	}
}

func (r *apiFavoriteRepository) Index(ctx context.Context, token string) ([]entity.Favorite, error) {
	return r.client.ListFavorites(ctx, token)
}

func (r *apiFavoriteRepository) Create(ctx context.Context, token string, hotelId int64) (entity.Favorite, error) {
	return r.client.AddFavorite(ctx, token, hotelId)
}

func (r *apiFavoriteRepository) Delete(ctx context.Context, token string, hotelId int64) error {
	return r.client.RemoveFavorite(ctx, token, hotelId)
}
