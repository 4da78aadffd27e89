package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireChat(r chi.Router, chatHandler *adaptor.ChatHandler, uploadHandler *adaptor.UploadHandler, config *utils.Config, log *zap.Logger) {
	// Chat is open to any authenticated user; thread membership is checked
	// per booking in the service.
	r.Group(func(r chi.Router) {
		protect(r, config, log)

		r.Post("/api/support/messages", chatHandler.Send)
		r.Get("/api/support/bookings/{id}/messages", chatHandler.ListByBooking)
		r.Put("/api/support/messages/read", chatHandler.MarkRead)
		r.Put("/api/support/messages/read-all", chatHandler.MarkAllRead)

		r.Post("/api/support/upload", uploadHandler.Upload)
	})
}
