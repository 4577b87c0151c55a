package http

import (
	"net/http"

	wsDelivery "hotelchat/internal/delivery/websocket"

	"github.com/go-chi/chi/v5"
)

func MapHttpRoutes(r chi.Router, httpHandler *HttpHandler, websocketHandler *wsDelivery.WebsocketHandler, authMiddleware *AuthMiddleware) {
	r.Get("/health", http.HandlerFunc(httpHandler.Health))

	// Hotel browsing is public, as it is on the booking API.
	r.Get("/hotels", http.HandlerFunc(httpHandler.ListHotels))
	r.Get("/hotels/{id}", http.HandlerFunc(httpHandler.GetHotel))

	// The websocket authenticates with ?token= since browsers cannot set
	// headers on the upgrade request.
	r.Handle("/ws", http.HandlerFunc(websocketHandler.HandleWebSocket))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/inbox", func(r chi.Router) {
			r.Get("/", http.HandlerFunc(httpHandler.GetInbox))
			r.Put("/selection", http.HandlerFunc(httpHandler.SelectConversation))
			r.Get("/conversations/{key}", http.HandlerFunc(httpHandler.GetConversation))
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", http.HandlerFunc(httpHandler.SendMessage))
			r.Patch("/{id}", http.HandlerFunc(httpHandler.RespondToMessage))
			r.Delete("/{id}", http.HandlerFunc(httpHandler.DeleteMessage))
		})

		r.Post("/hotels/{id}/inquiries", http.HandlerFunc(httpHandler.InquireHotel))

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", http.HandlerFunc(httpHandler.ListFavorites))
			r.Post("/", http.HandlerFunc(httpHandler.AddFavorite))
			r.Delete("/{hotelId}", http.HandlerFunc(httpHandler.RemoveFavorite))
		})
	})
}
