package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, config *utils.Config, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		protect(r, config, log)

		// ==================== CLIENT ROUTES ====================
		r.Post("/api/client/bookings", bookingHandler.Create)
		r.Get("/api/client/bookings", bookingHandler.ListMine)
		r.Put("/api/client/bookings/{id}/cancel", bookingHandler.Cancel)

		r.Post("/api/client/charter-bookings", bookingHandler.CreateCharter)
		r.Get("/api/client/charter-bookings", bookingHandler.ListMineCharter)
		r.Put("/api/client/charter-bookings/{id}/cancel", bookingHandler.CancelCharter)

		// ==================== MANAGER ROUTES ====================
		r.Get("/api/manager/bookings", bookingHandler.ListAll)
		r.Put("/api/manager/bookings/{id}/status", bookingHandler.UpdateStatus)

		r.Get("/api/manager/charter-bookings", bookingHandler.ListAllCharter)
		r.Put("/api/manager/charter-bookings/{id}/status", bookingHandler.UpdateCharterStatus)

		// ==================== SHARED ROUTES ====================
		// Owner or manager/admin; ownership is checked in the service.
		r.Get("/api/support/bookings/{id}", bookingHandler.GetByID)
		r.Get("/api/support/charter-bookings/{id}", bookingHandler.GetCharterByID)
	})
}
