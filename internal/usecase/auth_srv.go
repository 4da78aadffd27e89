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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	// Refresh rotates the session: the old refresh token is revoked and a
	// new token pair is issued.
	Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, req *request.LogoutRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         entity.RoleClient,
		Status:       entity.UserStatusActive,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return s.issueTokens(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to look up user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check credentials")
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, fmt.Errorf("invalid email or password")
	}

	if user.Status == entity.UserStatusBlocked {
		s.log.Warn("Blocked account login attempt", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("unauthorized: account is blocked")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.issueTokens(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	token, err := utils.ParseUUID(req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	session, err := s.repo.Session.FindValidByToken(ctx, token)
	if err != nil {
		s.log.Error("Failed to look up session", zap.Error(err))
		return nil, fmt.Errorf("failed to refresh session")
	}
	if session == nil {
		return nil, fmt.Errorf("unauthorized: session expired")
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil || user == nil {
		return nil, fmt.Errorf("unauthorized: account not found")
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, fmt.Errorf("unauthorized: account is blocked")
	}

	// Rotation: the presented token dies with this call.
	if err := s.repo.Session.Revoke(ctx, session.ID); err != nil {
		s.log.Warn("Failed to revoke rotated session", zap.Error(err))
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, req *request.LogoutRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	token, err := utils.ParseUUID(req.RefreshToken)
	if err != nil {
		return fmt.Errorf("invalid refresh token")
	}

	session, err := s.repo.Session.FindValidByToken(ctx, token)
	if err != nil {
		s.log.Error("Failed to look up session on logout", zap.Error(err))
		return fmt.Errorf("failed to log out")
	}
	if session == nil {
		// Already gone, nothing to do.
		return nil
	}

	return s.repo.Session.Revoke(ctx, session.ID)
}

func (s *authService) issueTokens(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	accessTTL := time.Duration(s.config.Auth.AccessTTLMin) * time.Minute
	accessToken, err := utils.GenerateAccessToken(s.config.Auth.JWTSecret, user.ID, user.Role, accessTTL)
	if err != nil {
		s.log.Error("Failed to sign access token", zap.Error(err))
		return nil, fmt.Errorf("failed to create session")
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:       user.ID,
		RefreshToken: uuid.New(),
		ExpiresAt:    now.Add(time.Duration(s.config.Auth.RefreshTTLHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to persist session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	return &response.AuthResponse{
		User:         response.UserToResponse(user),
		AccessToken:  accessToken,
		RefreshToken: session.RefreshToken.String(),
	}, nil
}
