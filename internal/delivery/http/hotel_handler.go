package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"hotelchat/internal/entity"
)

// Method Get /hotels?search=&location=&minPrice=&maxPrice=
func (h *HttpHandler) ListHotels(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.HotelIndexFilter{
		Search:   query.Get("search"),
		Location: query.Get("location"),
	}

	var ok bool
	if filter.MinPrice, ok = priceParam(w, query.Get("minPrice"), "minPrice"); !ok {
		return
	}
	if filter.MaxPrice, ok = priceParam(w, query.Get("maxPrice"), "maxPrice"); !ok {
		return
	}

	hotels, err := h.hotelUc.Index(r.Context(), "", filter)
	if err != nil {
		writeError(w, "List hotels", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "success", Data: hotels})
}

// Method Get /hotels/{id}
func (h *HttpHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotelId, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	hotel, err := h.hotelUc.Get(r.Context(), "", hotelId)
	if err != nil {
		writeError(w, "Get hotel", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "success", Data: hotel})
}

// Method Post /hotels/{id}/inquiries
func (h *HttpHandler) InquireHotel(w http.ResponseWriter, r *http.Request) {
	viewer, token, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	hotelId, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	// The body is optional; without one the default inquiry is sent.
	var req entity.HotelInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, Response{Message: "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: validationMessage(err)})
		return
	}

	message, err := h.hotelUc.Inquire(r.Context(), viewer, token, hotelId, req.Content)
	if err != nil {
		writeError(w, "Inquire hotel", err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{Message: "message sent", Data: message})
}

func priceParam(w http.ResponseWriter, value, name string) (float64, bool) {
	if value == "" {
		return 0, true
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil || price < 0 {
		writeJSON(w, http.StatusBadRequest, Response{Message: "invalid " + name})
		return 0, false
	}
	return price, true
}
