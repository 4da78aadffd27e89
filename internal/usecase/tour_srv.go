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

type TourService interface {
	// Public catalogue (active tours only).
	ListPublished(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TourResponse], error)
	GetByID(ctx context.Context, tourID string) (*response.TourResponse, error)

	// Admin management.
	ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TourResponse], error)
	Create(ctx context.Context, req *request.CreateTourRequest) (*response.TourResponse, error)
	Update(ctx context.Context, tourID string, req *request.UpdateTourRequest) (*response.TourResponse, error)
	Delete(ctx context.Context, tourID string) error
}

type tourService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTourService(repo *repository.Repository, log *zap.Logger) TourService {
	return &tourService{
		repo: repo,
		log:  log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) list(ctx context.Context, activeOnly bool, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TourResponse], error) {
	tours, err := s.repo.Tour.FindAll(ctx, activeOnly, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("list tours: %w", err)
	}

	total, err := s.repo.Tour.Count(ctx, activeOnly)
	if err != nil {
		s.log.Error("Failed to count tours", zap.Error(err))
		return nil, fmt.Errorf("count tours: %w", err)
	}

	items := make([]response.TourResponse, len(tours))
	for i, tour := range tours {
		items[i] = response.TourToResponse(tour)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *tourService) ListPublished(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TourResponse], error) {
	return s.list(ctx, true, req)
}

func (s *tourService) ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TourResponse], error) {
	return s.list(ctx, false, req)
}

func (s *tourService) GetByID(ctx context.Context, tourID string) (*response.TourResponse, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", tourID)
	}

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) Create(ctx context.Context, req *request.CreateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	dateFrom, dateTo, err := parseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Destination: req.Destination,
		Description: req.Description,
		Price:       req.Price,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		SeatsTotal:  req.SeatsTotal,
		IsActive:    true,
	}

	if err := s.repo.Tour.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.log.Info("Tour created",
		zap.String("tour_id", tour.ID.String()),
		zap.String("title", tour.Title))

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) Update(ctx context.Context, tourID string, req *request.UpdateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", tourID)
	}

	if req.Title != nil {
		tour.Title = *req.Title
	}
	if req.Destination != nil {
		tour.Destination = *req.Destination
	}
	if req.Description != nil {
		tour.Description = *req.Description
	}
	if req.Price != nil {
		tour.Price = *req.Price
	}
	if req.DateFrom != nil {
		tour.DateFrom, err = parseDateOnly(*req.DateFrom)
		if err != nil {
			return nil, err
		}
	}
	if req.DateTo != nil {
		tour.DateTo, err = parseDateOnly(*req.DateTo)
		if err != nil {
			return nil, err
		}
	}
	if tour.DateTo.Before(tour.DateFrom) {
		return nil, fmt.Errorf("invalid date range: date_to before date_from")
	}
	if req.SeatsTotal != nil {
		tour.SeatsTotal = *req.SeatsTotal
	}
	if req.IsActive != nil {
		tour.IsActive = *req.IsActive
	}
	tour.UpdatedAt = time.Now()

	if err := s.repo.Tour.Update(ctx, tour); err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	s.log.Info("Tour updated", zap.String("tour_id", tour.ID.String()))

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) Delete(ctx context.Context, tourID string) error {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	if err := s.repo.Tour.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}

	s.log.Info("Tour deleted", zap.String("tour_id", tourID))
	return nil
}
