package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TransportHandler struct {
	service usecase.TransportBookingService
	log     *zap.Logger
}

func NewTransportHandler(service usecase.TransportBookingService, log *zap.Logger) *TransportHandler {
	return &TransportHandler{
		service: service,
		log:     log.With(zap.String("handler", "transport")),
	}
}

// Create handles POST /api/client/transport-bookings
func (h *TransportHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTransportBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create transport booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// ListMine handles GET /api/client/transport-bookings
func (h *TransportHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.ListMine(r.Context(), userID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list transport bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetByID handles GET /api/support/transport-bookings/{id}
func (h *TransportHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetByID(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get transport booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Cancel handles PUT /api/client/transport-bookings/{id}/cancel
func (h *TransportHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.Cancel(r.Context(), userID, bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "cancel transport booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

// ListAll handles GET /api/manager/transport-bookings
func (h *TransportHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list all transport bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateStatus handles PUT /api/manager/transport-bookings/{id}/status
func (h *TransportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), userID, bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update transport booking status")
		return
	}

	utils.ResponseSuccess(w, "Status updated", booking)
}
