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

type TourHandler struct {
	service usecase.TourService
	log     *zap.Logger
}

func NewTourHandler(service usecase.TourService, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		log:     log.With(zap.String("handler", "tour")),
	}
}

// ListPublished handles GET /api/tours (public)
func (h *TourHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	tours, err := h.service.ListPublished(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list tours")
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}

// GetByID handles GET /api/tours/{id} (public)
func (h *TourHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	tour, err := h.service.GetByID(r.Context(), tourID)
	if err != nil {
		handleServiceError(h.log, w, err, "get tour")
		return
	}

	utils.ResponseSuccess(w, "success", tour)
}

// ListAll handles GET /api/admin/tours
func (h *TourHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	tours, err := h.service.ListAll(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list all tours")
		return
	}

	utils.ResponseSuccess(w, "success", tours)
}

// Create handles POST /api/admin/tours
func (h *TourHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tour, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create tour")
		return
	}

	utils.ResponseCreated(w, "Tour created", tour)
}

// Update handles PUT /api/admin/tours/{id}
func (h *TourHandler) Update(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	var req request.UpdateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tour, err := h.service.Update(r.Context(), tourID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update tour")
		return
	}

	utils.ResponseSuccess(w, "Tour updated", tour)
}

// Delete handles DELETE /api/admin/tours/{id}
func (h *TourHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), tourID); err != nil {
		handleServiceError(h.log, w, err, "delete tour")
		return
	}

	utils.ResponseSuccess(w, "Tour deleted", nil)
}
