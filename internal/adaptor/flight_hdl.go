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

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// ListPublished handles GET /api/flights (public)
func (h *FlightHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.ListPublished(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// Resolve handles POST /api/flights/resolve (public)
func (h *FlightHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req request.ResolveFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flight, err := h.service.Resolve(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "resolve flight")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// ListAll handles GET /api/manager/flights
func (h *FlightHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.ListAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list all flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// Create handles POST /api/manager/flights
func (h *FlightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flight, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create flight")
		return
	}

	utils.ResponseCreated(w, "Flight created", flight)
}

// Update handles PUT /api/manager/flights/{id}
func (h *FlightHandler) Update(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	var req request.UpdateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	flight, err := h.service.Update(r.Context(), flightID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update flight")
		return
	}

	utils.ResponseSuccess(w, "Flight updated", flight)
}

// Archive handles DELETE /api/manager/flights/{id}
func (h *FlightHandler) Archive(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	if err := h.service.Archive(r.Context(), flightID); err != nil {
		handleServiceError(h.log, w, err, "archive flight")
		return
	}

	utils.ResponseSuccess(w, "Flight archived", nil)
}
