package wire

import (
	"net/http"

	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/middleware"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config.Upload.Dir, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, config, logger)
	wireTour(r, handler.Tour, config, logger)
	wireFlight(r, handler.Flight, config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wireTransport(r, handler.Transport, config, logger)
	wireChat(r, handler.Chat, handler.Upload, config, logger)

	// Uploaded chat attachments are served statically.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(config.Upload.Dir))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// protect applies authentication plus the role guard table to a route group.
func protect(r chi.Router, config *utils.Config, logger *zap.Logger) {
	r.Use(middleware.Auth(config.Auth.JWTSecret, logger))
	r.Use(middleware.RouteGuard(logger))
}
