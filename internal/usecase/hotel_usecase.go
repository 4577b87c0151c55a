package usecase

import (
	"context"
	"strings"

	"hotelchat/internal/entity"
	"hotelchat/internal/repository"
)

type HotelUsecase interface {
	Index(ctx context.Context, token string, filter entity.HotelIndexFilter) ([]entity.Hotel, error)
	Get(ctx context.Context, token string, hotelId int64) (entity.Hotel, error)
	// Inquire sends a traveler's message about a hotel to the operator who
	// created it.
	Inquire(ctx context.Context, viewer entity.Viewer, token string, hotelId int64, content string) (entity.Message, error)
}

type hotelUsecase struct {
	hotelRepo repository.HotelRepository
	messageUc MessageUsecase
}

func NewHotelUsecase(hotelRepo repository.HotelRepository, messageUc MessageUsecase) HotelUsecase {
	return &hotelUsecase{
		hotelRepo: hotelRepo,
		messageUc: messageUc,
	}
}

func (h *hotelUsecase) Index(ctx context.Context, token string, filter entity.HotelIndexFilter) ([]entity.Hotel, error) {
	if filter.MinPrice > 0 && filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return nil, ErrInvalidPriceRange
	}

	hotels, err := h.hotelRepo.Index(ctx, token, filter)
	if err != nil {
		return nil, err
	}
	if hotels == nil {
		hotels = []entity.Hotel{}
	}
	return hotels, nil
}

func (h *hotelUsecase) Get(ctx context.Context, token string, hotelId int64) (entity.Hotel, error) {
	return h.hotelRepo.Get(ctx, token, hotelId)
}

func (h *hotelUsecase) Inquire(ctx context.Context, viewer entity.Viewer, token string, hotelId int64, content string) (entity.Message, error) {
	hotel, err := h.hotelRepo.Get(ctx, token, hotelId)
	if err != nil {
		return entity.Message{}, err
	}
	if hotel.CreatedBy <= 0 {
		return entity.Message{}, ErrNoHotelOperator
	}
	if hotel.CreatedBy == viewer.Id {
		return entity.Message{}, ErrOwnHotel
	}

	content = strings.TrimSpace(content)
	if content == "" {
		content = entity.DefaultInquiry
	}

	return h.messageUc.Send(ctx, viewer, token, entity.SendMessageRequest{
		RecipientId: hotel.CreatedBy,
		HotelId:     &hotel.Id,
		Content:     content,
	})
}
