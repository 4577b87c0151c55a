package usecase

import "errors"

var (
	ErrNotOperator          = errors.New("only hotel operators can do this")
	ErrEmptySelection       = errors.New("conversation key is required")
	ErrMessagesFailed       = errors.New("failed to load messages")
	ErrInvalidViewer        = errors.New("invalid viewer")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidPriceRange    = errors.New("minPrice must not exceed maxPrice")
	ErrNoHotelOperator      = errors.New("hotel has no operator to contact")
	ErrOwnHotel             = errors.New("cannot send an inquiry about your own hotel")
)
