package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/resolver"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlightService interface {
	// ListPublished returns active flights with remaining seats for the
	// requested departure date (today when absent).
	ListPublished(ctx context.Context) ([]response.FlightResponse, error)
	// Resolve runs the pure resolver over the published flights.
	Resolve(ctx context.Context, req *request.ResolveFlightRequest) (*response.FlightResponse, error)

	// Manager/admin management.
	ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error)
	Create(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error)
	Update(ctx context.Context, flightID string, req *request.UpdateFlightRequest) (*response.FlightResponse, error)
	// Archive hides a flight from the catalogue; bookings keep referencing it.
	Archive(ctx context.Context, flightID string) error
}

type flightService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFlightService(repo *repository.Repository, log *zap.Logger) FlightService {
	return &flightService{
		repo: repo,
		log:  log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) ListPublished(ctx context.Context) ([]response.FlightResponse, error) {
	flights, err := s.repo.Flight.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to list published flights", zap.Error(err))
		return nil, fmt.Errorf("list flights: %w", err)
	}

	items := make([]response.FlightResponse, len(flights))
	for i, flight := range flights {
		items[i] = response.FlightToResponse(flight, flight.SeatsTotal)
	}
	return items, nil
}

func (s *flightService) Resolve(ctx context.Context, req *request.ResolveFlightRequest) (*response.FlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	flights, err := s.repo.Flight.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to load flights for resolution", zap.Error(err))
		return nil, fmt.Errorf("load flights: %w", err)
	}

	flight, err := resolver.Resolve(flights, resolver.Request{
		From:     req.From,
		To:       req.To,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})
	if err != nil {
		return nil, err
	}

	departure, err := parseDateOnly(req.DateFrom)
	if err != nil {
		return nil, err
	}
	taken, err := s.repo.CharterBooking.SeatsTaken(ctx, flight.ID, departure)
	if err != nil {
		s.log.Error("Failed to count taken seats", zap.Error(err))
		return nil, fmt.Errorf("count seats: %w", err)
	}

	resp := response.FlightToResponse(flight, flight.SeatsTotal-int(taken))
	return &resp, nil
}

func (s *flightService) ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error) {
	flights, err := s.repo.Flight.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list flights", zap.Error(err))
		return nil, fmt.Errorf("list flights: %w", err)
	}

	total, err := s.repo.Flight.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count flights: %w", err)
	}

	items := make([]response.FlightResponse, len(flights))
	for i, flight := range flights {
		items[i] = response.FlightToResponse(flight, flight.SeatsTotal)
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *flightService) Create(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create flight validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	dateFrom, dateTo, err := parseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	flight := &entity.CharterFlight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		From:        req.From,
		To:          req.To,
		DateFrom:    dateFrom,
		DateTo:      dateTo,
		WeekDays:    req.WeekDays,
		SeatsTotal:  req.SeatsTotal,
		Categories:  req.Categories,
		HasBusiness: req.HasBusiness,
		HasComfort:  req.HasComfort,
		IsActive:    true,
	}

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		return nil, fmt.Errorf("create flight: %w", err)
	}

	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID.String()),
		zap.String("from", flight.From),
		zap.String("to", flight.To))

	resp := response.FlightToResponse(flight, flight.SeatsTotal)
	return &resp, nil
}

func (s *flightService) Update(ctx context.Context, flightID string, req *request.UpdateFlightRequest) (*response.FlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID format %s: %w", flightID, err)
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flight: %w", err)
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s not found", flightID)
	}

	if req.DateFrom != nil {
		flight.DateFrom, err = parseDateOnly(*req.DateFrom)
		if err != nil {
			return nil, err
		}
	}
	if req.DateTo != nil {
		flight.DateTo, err = parseDateOnly(*req.DateTo)
		if err != nil {
			return nil, err
		}
	}
	if flight.DateTo.Before(flight.DateFrom) {
		return nil, fmt.Errorf("invalid date range: date_to before date_from")
	}
	if req.WeekDays != nil {
		flight.WeekDays = req.WeekDays
	}
	if req.SeatsTotal != nil {
		flight.SeatsTotal = *req.SeatsTotal
	}
	if req.Categories != nil {
		flight.Categories = req.Categories
	}
	if req.HasBusiness != nil {
		flight.HasBusiness = *req.HasBusiness
	}
	if req.HasComfort != nil {
		flight.HasComfort = *req.HasComfort
	}
	if req.IsActive != nil {
		flight.IsActive = *req.IsActive
	}
	flight.UpdatedAt = time.Now()

	if err := s.repo.Flight.Update(ctx, flight); err != nil {
		return nil, fmt.Errorf("update flight: %w", err)
	}

	s.log.Info("Flight updated", zap.String("flight_id", flight.ID.String()))

	resp := response.FlightToResponse(flight, flight.SeatsTotal)
	return &resp, nil
}

func (s *flightService) Archive(ctx context.Context, flightID string) error {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return fmt.Errorf("invalid flight ID format %s: %w", flightID, err)
	}

	if err := s.repo.Flight.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("archive flight: %w", err)
	}

	s.log.Info("Flight archived", zap.String("flight_id", flightID))
	return nil
}
