package usecase

import (
	"context"
	"testing"

	"hotelchat/internal/entity"
	"hotelchat/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHotels struct {
	hotels map[int64]entity.Hotel
	filter entity.HotelIndexFilter
}

func (f *fakeHotels) Index(_ context.Context, _ string, filter entity.HotelIndexFilter) ([]entity.Hotel, error) {
	f.filter = filter
	if len(f.hotels) == 0 {
		return nil, nil
	}
	out := make([]entity.Hotel, 0, len(f.hotels))
	for _, h := range f.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHotels) Get(_ context.Context, _ string, id int64) (entity.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return entity.Hotel{}, repository.ErrHotelNotFound
	}
	return h, nil
}

func TestHotel_IndexPassesFilter(t *testing.T) {
	hotels := &fakeHotels{}
	uc := NewHotelUsecase(hotels, nil)

	filter := entity.HotelIndexFilter{Search: "sea", MinPrice: 50, MaxPrice: 120}
	list, err := uc.Index(context.Background(), "", filter)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.Equal(t, filter, hotels.filter)

	_, err = uc.Index(context.Background(), "", entity.HotelIndexFilter{MinPrice: 200, MaxPrice: 100})
	assert.ErrorIs(t, err, ErrInvalidPriceRange)
}

func TestHotel_InquireMessagesOperator(t *testing.T) {
	hotels := &fakeHotels{hotels: map[int64]entity.Hotel{
		2: {Id: 2, Name: "Seaview", CreatedBy: 9},
		3: {Id: 3, Name: "Orphan"},
	}}
	repo := &fakeWriteRepo{}
	notifier := &recordingNotifier{}
	uc := NewHotelUsecase(hotels, NewMessageUseCase(repo, notifier))
	traveler := entity.Viewer{Id: 1, Role: entity.RoleUser}
	ctx := context.Background()

	_, err := uc.Inquire(ctx, traveler, "tok", 2, "  ")
	require.NoError(t, err)
	assert.Equal(t, int64(9), repo.created.RecipientId)
	require.NotNil(t, repo.created.HotelId)
	assert.Equal(t, int64(2), *repo.created.HotelId)
	assert.Equal(t, entity.DefaultInquiry, repo.created.Content)
	assert.Equal(t, []int64{1, 9}, notifier.users)

	_, err = uc.Inquire(ctx, traveler, "tok", 2, "pets allowed?")
	require.NoError(t, err)
	assert.Equal(t, "pets allowed?", repo.created.Content)

	_, err = uc.Inquire(ctx, traveler, "tok", 3, "")
	assert.ErrorIs(t, err, ErrNoHotelOperator)

	_, err = uc.Inquire(ctx, entity.Viewer{Id: 9, Role: entity.RoleOperator}, "tok", 2, "")
	assert.ErrorIs(t, err, ErrOwnHotel)

	_, err = uc.Inquire(ctx, traveler, "tok", 4, "")
	assert.ErrorIs(t, err, repository.ErrHotelNotFound)
}
