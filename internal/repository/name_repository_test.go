package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotelchat/infrastructure/cache"
	"hotelchat/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []entity.User
	calls int
	err   error
}

func (f *fakeUserRepo) Index(_ context.Context, _ string, filter entity.UserIndexFilter) ([]entity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int64]bool)
	for _, id := range filter.Ids {
		wanted[id] = true
	}
	out := make([]entity.User, 0)
	for _, u := range f.users {
		if wanted[u.Id] {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeHotelRepo struct {
	mu     sync.Mutex
	hotels map[int64]entity.Hotel
	calls  map[int64]int
	err    error
}

func (f *fakeHotelRepo) Index(context.Context, string, entity.HotelIndexFilter) ([]entity.Hotel, error) {
	return nil, errors.New("not used")
}

func (f *fakeHotelRepo) Get(_ context.Context, _ string, id int64) (entity.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[int64]int)
	}
	f.calls[id]++
	if f.err != nil {
		return entity.Hotel{}, f.err
	}
	h, ok := f.hotels[id]
	if !ok {
		return entity.Hotel{}, ErrHotelNotFound
	}
	return h, nil
}

func TestNameRepository_UserNamesCached(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemCache(0)
	defer mem.Close()

	users := &fakeUserRepo{users: []entity.User{{Id: 1, Username: "alice"}, {Id: 2, Username: "bob"}}}
	repo := NewNameRepository(mem, users, &fakeHotelRepo{}, time.Minute)

	names, err := repo.UserNames(ctx, "tok", []int64{1, 2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "alice", 2: "bob"}, names)
	assert.Equal(t, 1, users.calls)

	names, err = repo.UserNames(ctx, "tok", []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, names, 2)
	assert.Equal(t, 1, users.calls)
}

func TestNameRepository_UserNamesError(t *testing.T) {
	mem := cache.NewMemCache(0)
	defer mem.Close()
	require.NoError(t, mem.Set(context.Background(), userNameKey(1), "alice", 0))

	boom := errors.New("boom")
	repo := NewNameRepository(mem, &fakeUserRepo{err: boom}, &fakeHotelRepo{}, time.Minute)

	names, err := repo.UserNames(context.Background(), "tok", []int64{1, 2})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, map[int64]string{1: "alice"}, names)
}

func TestNameRepository_HotelNames(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemCache(0)
	defer mem.Close()

	hotels := &fakeHotelRepo{hotels: map[int64]entity.Hotel{
		1: {Id: 1, Name: "Seaview"},
		2: {Id: 2, Name: "Harbor"},
	}}
	repo := NewNameRepository(mem, &fakeUserRepo{}, hotels, time.Minute)

	names, err := repo.HotelNames(ctx, "", []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Seaview", 2: "Harbor"}, names)

	_, err = repo.HotelNames(ctx, "", []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, hotels.calls[1])
	assert.Equal(t, 1, hotels.calls[2])
}

func TestSelectionRepository(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemCache(0)
	defer mem.Close()

	repo := NewSelectionRepository(mem, time.Hour)

	key, err := repo.Get(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, key)

	require.NoError(t, repo.Set(ctx, 4, "hotel-2"))
	key, err = repo.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "hotel-2", key)
}
