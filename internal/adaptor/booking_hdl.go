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

// BookingHandler serves both tour and charter bookings; the two share the
// status lifecycle and differ only in how a booking is created.
type BookingHandler struct {
	bookings usecase.BookingService
	charter  usecase.CharterBookingService
	log      *zap.Logger
}

func NewBookingHandler(bookings usecase.BookingService, charter usecase.CharterBookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		charter:  charter,
		log:      log.With(zap.String("handler", "booking")),
	}
}

// ==================== TOUR BOOKINGS ====================

// Create handles POST /api/client/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.bookings.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// ListMine handles GET /api/client/bookings
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.bookings.ListMine(r.Context(), userID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetByID handles GET /api/support/bookings/{id}
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.bookings.GetByID(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Cancel handles PUT /api/client/bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.bookings.Cancel(r.Context(), userID, bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

// ListAll handles GET /api/manager/bookings
func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list all bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateStatus handles PUT /api/manager/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.bookings.UpdateStatus(r.Context(), userID, bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Status updated", booking)
}

// ==================== CHARTER BOOKINGS ====================

// CreateCharter handles POST /api/client/charter-bookings
func (h *BookingHandler) CreateCharter(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCharterBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.charter.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create charter booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// ListMineCharter handles GET /api/client/charter-bookings
func (h *BookingHandler) ListMineCharter(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.charter.ListMine(r.Context(), userID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list charter bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetCharterByID handles GET /api/support/charter-bookings/{id}
func (h *BookingHandler) GetCharterByID(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.charter.GetByID(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get charter booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelCharter handles PUT /api/client/charter-bookings/{id}/cancel
func (h *BookingHandler) CancelCharter(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.charter.Cancel(r.Context(), userID, bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "cancel charter booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

// ListAllCharter handles GET /api/manager/charter-bookings
func (h *BookingHandler) ListAllCharter(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.charter.ListAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list all charter bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateCharterStatus handles PUT /api/manager/charter-bookings/{id}/status
func (h *BookingHandler) UpdateCharterStatus(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.charter.UpdateStatus(r.Context(), userID, bookingID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update charter booking status")
		return
	}

	utils.ResponseSuccess(w, "Status updated", booking)
}
