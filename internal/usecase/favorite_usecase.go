package usecase

import (
	"context"

	"hotelchat/internal/entity"
	"hotelchat/internal/repository"
)

type FavoriteUsecase interface {
	Index(ctx context.Context, token string) ([]entity.Favorite, error)
	Add(ctx context.Context, token string, hotelId int64) (entity.Favorite, error)
	Remove(ctx context.Context, token string, hotelId int64) error
}

type favoriteUsecase struct {
	favoriteRepo repository.FavoriteRepository
}

func NewFavoriteUsecase(favoriteRepo repository.FavoriteRepository) FavoriteUsecase {
	return &favoriteUsecase{
		favoriteRepo: favoriteRepo,
	}
}

func (f *favoriteUsecase) Index(ctx context.Context, token string) ([]entity.Favorite, error) {
	favorites, err := f.favoriteRepo.Index(ctx, token)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []entity.Favorite{}
	}
	return favorites, nil
}

func (f *favoriteUsecase) Add(ctx context.Context, token string, hotelId int64) (entity.Favorite, error) {
	return f.favoriteRepo.Create(ctx, token, hotelId)
}

func (f *favoriteUsecase) Remove(ctx context.Context, token string, hotelId int64) error {
	return f.favoriteRepo.Delete(ctx, token, hotelId)
}
