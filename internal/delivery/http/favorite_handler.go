package http

import (
	"net/http"

	"hotelchat/internal/entity"
)

// Method Get /favorites
func (h *HttpHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	_, token, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	favorites, err := h.favoriteUc.Index(r.Context(), token)
	if err != nil {
		writeError(w, "List favorites", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "success", Data: favorites})
}

// Method Post /favorites
func (h *HttpHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	_, token, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	var req entity.AddFavoriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	favorite, err := h.favoriteUc.Add(r.Context(), token, req.HotelId)
	if err != nil {
		writeError(w, "Add favorite", err)
		return
	}

	writeJSON(w, http.StatusCreated, Response{Message: "added to favorites", Data: favorite})
}

// Method Delete /favorites/{hotelId}
func (h *HttpHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	_, token, ok := viewerFrom(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "unauthorized"})
		return
	}

	hotelId, ok := idParam(w, r, "hotelId")
	if !ok {
		return
	}

	if err := h.favoriteUc.Remove(r.Context(), token, hotelId); err != nil {
		writeError(w, "Remove favorite", err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: "removed from favorites"})
}
