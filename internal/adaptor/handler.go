package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Tour      *TourHandler
	Flight    *FlightHandler
	Booking   *BookingHandler
	Transport *TransportHandler
	Chat      *ChatHandler
	Upload    *UploadHandler
}

func NewHandler(service *usecase.Service, uploadDir string, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Tour:      NewTourHandler(service.Tour, log),
		Flight:    NewFlightHandler(service.Flight, log),
		Booking:   NewBookingHandler(service.Booking, service.Charter, log),
		Transport: NewTransportHandler(service.Transport, log),
		Chat:      NewChatHandler(service.Chat, log),
		Upload:    NewUploadHandler(uploadDir, log),
	}
}

// handleServiceError maps usecase errors onto the response envelope.
// ConflictError carries a localized message that must reach the client
// verbatim, so it is matched by type before the string fallbacks.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var conflict *usecase.ConflictError
	if errors.As(err, &conflict) {
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, conflict.Message)
		return
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "not cancellable"),
		strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// paginationFromQuery reads page/per_page query parameters with defaults.
func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
