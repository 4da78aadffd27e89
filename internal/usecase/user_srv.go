package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService covers the admin's account management: the manager roster and
// blocking/unblocking any account.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	ListManagers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	ListClients(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	CreateManager(ctx context.Context, req *request.CreateManagerRequest) (*response.UserResponse, error)
	SetStatus(ctx context.Context, userID string, req *request.UpdateUserStatusRequest) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID.String())
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) listByRole(ctx context.Context, role entity.UserRole, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindByRole(ctx, role, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err), zap.String("role", string(role)))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.CountByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	items := make([]response.UserResponse, len(users))
	for i, user := range users {
		items[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *userService) ListManagers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	return s.listByRole(ctx, entity.RoleManager, req)
}

func (s *userService) ListClients(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	return s.listByRole(ctx, entity.RoleClient, req)
}

func (s *userService) CreateManager(ctx context.Context, req *request.CreateManagerRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create manager validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s is already registered", req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         entity.RoleManager,
		Status:       entity.UserStatusActive,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create manager: %w", err)
	}

	s.log.Info("Manager created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) SetStatus(ctx context.Context, userID string, req *request.UpdateUserStatusRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	if user.Role == entity.RoleAdmin {
		return nil, fmt.Errorf("admin accounts cannot be blocked")
	}

	status := entity.UserStatus(req.Status)
	if status != user.Status {
		if err := s.repo.User.UpdateStatus(ctx, id, status); err != nil {
			return nil, fmt.Errorf("update user status: %w", err)
		}
		user.Status = status
		user.UpdatedAt = time.Now()

		// Blocking also ends every active session.
		if status == entity.UserStatusBlocked {
			if err := s.repo.Session.RevokeAllForUser(ctx, id); err != nil {
				s.log.Warn("Failed to revoke sessions for blocked user",
					zap.Error(err), zap.String("user_id", userID))
			}
		}

		s.log.Info("User status updated",
			zap.String("user_id", userID),
			zap.String("status", req.Status))
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
