package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTransport(r chi.Router, transportHandler *adaptor.TransportHandler, config *utils.Config, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		protect(r, config, log)

		// ==================== CLIENT ROUTES ====================
		r.Post("/api/client/transport-bookings", transportHandler.Create)
		r.Get("/api/client/transport-bookings", transportHandler.ListMine)
		r.Put("/api/client/transport-bookings/{id}/cancel", transportHandler.Cancel)

		// ==================== MANAGER ROUTES ====================
		r.Get("/api/manager/transport-bookings", transportHandler.ListAll)
		r.Put("/api/manager/transport-bookings/{id}/status", transportHandler.UpdateStatus)

		// ==================== SHARED ROUTES ====================
		r.Get("/api/support/transport-bookings/{id}", transportHandler.GetByID)
	})
}
