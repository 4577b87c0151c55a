package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"hotelchat/infrastructure/cache"
	"hotelchat/internal/entity"
	"hotelchat/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const hotelFetchConcurrency = 8

// NameRepository resolves user and hotel display names, keeping them in the
// cache for ttl. Names that cannot be resolved are left out of the result.
type NameRepository interface {
	UserNames(ctx context.Context, token string, ids []int64) (map[int64]string, error)
	HotelNames(ctx context.Context, token string, ids []int64) (map[int64]string, error)
}

type nameRepository struct {
	cache     cache.Cache
	userRepo  UserRepository
	hotelRepo HotelRepository
	ttl       time.Duration
}

func NewNameRepository(c cache.Cache, userRepo UserRepository, hotelRepo HotelRepository, ttl time.Duration) NameRepository {
	return &nameRepository{
		cache:     c,
		userRepo:  userRepo,
		hotelRepo: hotelRepo,
		ttl:       ttl,
	}
}

func userNameKey(id int64) string {
	return "name:user:" + strconv.FormatInt(id, 10)
}

func hotelNameKey(id int64) string {
	return "name:hotel:" + strconv.FormatInt(id, 10)
}

func (r *nameRepository) UserNames(ctx context.Context, token string, ids []int64) (map[int64]string, error) {
	names, missing := r.fromCache(ctx, ids, userNameKey)
	if len(missing) == 0 {
		return names, nil
	}

	users, err := r.userRepo.Index(ctx, token, entity.UserIndexFilter{Ids: missing})
	if err != nil {
		return names, fmt.Errorf("resolve user names: %w", err)
	}

	for _, u := range users {
		if u.Username == "" {
			continue
		}
		names[u.Id] = u.Username
		r.store(ctx, userNameKey(u.Id), u.Username)
	}

	return names, nil
}

func (r *nameRepository) HotelNames(ctx context.Context, token string, ids []int64) (map[int64]string, error) {
	names, missing := r.fromCache(ctx, ids, hotelNameKey)
	if len(missing) == 0 {
		return names, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(hotelFetchConcurrency)

	for _, id := range missing {
		id := id
		g.Go(func() error {
			hotel, err := r.hotelRepo.Get(gctx, token, id)
			if errors.Is(err, ErrHotelNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("resolve hotel %d: %w", id, err)
			}
			if hotel.Name == "" {
				return nil
			}

			mu.Lock()
			names[id] = hotel.Name
			mu.Unlock()
			r.store(gctx, hotelNameKey(id), hotel.Name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return names, err
	}
	return names, nil
}

func (r *nameRepository) fromCache(ctx context.Context, ids []int64, key func(int64) string) (map[int64]string, []int64) {
	names := make(map[int64]string, len(ids))
	missing := make([]int64, 0)
	seen := make(map[int64]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		name, err := r.cache.Get(ctx, key(id))
		if err == nil {
			names[id] = name
			continue
		}
		if !errors.Is(err, cache.ErrMiss) {
			logger.Warn("name cache get %s: %v", key(id), err)
		}
		missing = append(missing, id)
	}

	return names, missing
}

func (r *nameRepository) store(ctx context.Context, key, name string) {
	if err := r.cache.Set(ctx, key, name, r.ttl); err != nil {
		logger.Warn("name cache set %s: %v", key, err)
	}
}
