package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, config *utils.Config, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		protect(r, config, log)

		r.Get("/api/support/profile", userHandler.Profile)

		// ==================== ADMIN ROUTES ====================
		r.Get("/api/admin/managers", userHandler.ListManagers)
		r.Post("/api/admin/managers", userHandler.CreateManager)
		r.Get("/api/admin/clients", userHandler.ListClients)
		r.Put("/api/admin/users/{id}/status", userHandler.SetStatus)
	})
}
