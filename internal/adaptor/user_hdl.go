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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Profile handles GET /api/support/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// ListManagers handles GET /api/admin/managers
func (h *UserHandler) ListManagers(w http.ResponseWriter, r *http.Request) {
	managers, err := h.service.ListManagers(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list managers")
		return
	}

	utils.ResponseSuccess(w, "success", managers)
}

// ListClients handles GET /api/admin/clients
func (h *UserHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.ListClients(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list clients")
		return
	}

	utils.ResponseSuccess(w, "success", clients)
}

// CreateManager handles POST /api/admin/managers
func (h *UserHandler) CreateManager(w http.ResponseWriter, r *http.Request) {
	var req request.CreateManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	manager, err := h.service.CreateManager(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create manager")
		return
	}

	utils.ResponseCreated(w, "Manager created", manager)
}

// SetStatus handles PUT /api/admin/users/{id}/status
func (h *UserHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.UpdateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.SetStatus(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update user status")
		return
	}

	utils.ResponseSuccess(w, "Status updated", user)
}
