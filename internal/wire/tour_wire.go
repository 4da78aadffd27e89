package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTour(r chi.Router, tourHandler *adaptor.TourHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/tours", tourHandler.ListPublished)
	r.Get("/api/tours/{id}", tourHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/tours", func(r chi.Router) {
		protect(r, config, log)

		r.Get("/", tourHandler.ListAll)
		r.Post("/", tourHandler.Create)
		r.Put("/{id}", tourHandler.Update)
		r.Delete("/{id}", tourHandler.Delete)
	})
}
