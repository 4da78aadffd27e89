package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/flights", flightHandler.ListPublished)
	r.Post("/api/flights/resolve", flightHandler.Resolve)

	// ==================== MANAGER ROUTES ====================
	r.Route("/api/manager/flights", func(r chi.Router) {
		protect(r, config, log)

		r.Get("/", flightHandler.ListAll)
		r.Post("/", flightHandler.Create)
		r.Put("/{id}", flightHandler.Update)
		r.Delete("/{id}", flightHandler.Archive)
	})
}
