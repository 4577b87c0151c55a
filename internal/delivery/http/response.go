package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"hotelchat/infrastructure/bookingapi"
	"hotelchat/internal/repository"
	"hotelchat/internal/usecase"
	"hotelchat/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Encode response error: %v", err)
	}
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// On failure it writes the 400 itself and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: "invalid request body"})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: validationMessage(err)})
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fe.Field() + " is too long"
	default:
		return fe.Field() + " is invalid"
	}
}

// writeError maps usecase and booking API errors to a status code.
func writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, usecase.ErrNotOperator):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, usecase.ErrEmptySelection),
		errors.Is(err, usecase.ErrInvalidPriceRange),
		errors.Is(err, usecase.ErrOwnHotel):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrNoHotelOperator):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, usecase.ErrConversationNotFound),
		errors.Is(err, repository.ErrMessageNotFound),
		errors.Is(err, repository.ErrHotelNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, usecase.ErrInvalidViewer):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, bookingapi.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, bookingapi.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, usecase.ErrMessagesFailed):
		status, message = http.StatusBadGateway, "failed to load messages, please try again"
	}

	if status >= http.StatusInternalServerError {
		logger.Error("%s error: %v", op, err)
	} else {
		logger.Warn("%s error: %v", op, err)
	}
	writeJSON(w, status, Response{Message: message})
}
