package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hotelchat/infrastructure/cache"
)

// SelectionRepository remembers which conversation each viewer has open.
type SelectionRepository interface {
	// Get returns "" when the viewer has no selection yet.
	Get(ctx context.Context, viewerId int64) (string, error)
	Set(ctx context.Context, viewerId int64, key string) error
}

type selectionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewSelectionRepository(c cache.Cache, ttl time.Duration) SelectionRepository {
	return &selectionRepository{
		cache: c,
		ttl:   ttl,
	}
}

func selectionKey(viewerId int64) string {
	return "selection:" + strconv.FormatInt(viewerId, 10)
}

func (r *selectionRepository) Get(ctx context.Context, viewerId int64) (string, error) {
	key, err := r.cache.Get(ctx, selectionKey(viewerId))
	if errors.Is(err, cache.ErrMiss) {
		return "", nil
	}
	return key, err
}

func (r *selectionRepository) Set(ctx context.Context, viewerId int64, key string) error {
	return r.cache.Set(ctx, selectionKey(viewerId), key, r.ttl)
}
