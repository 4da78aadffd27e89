package usecase

import (
	"context"
	"errors"
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

type CharterBookingService interface {
	// Create resolves the route+dates to a concrete flight and books seats
	// on it. Resolution failure and sold-out both surface as conflicts.
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateCharterBookingRequest) (*response.CharterBookingResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CharterBookingResponse], error)
	GetByID(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, bookingID string) (*response.CharterBookingResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, bookingID string) (*response.CharterBookingResponse, error)

	// Manager/admin management.
	ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CharterBookingResponse], error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.CharterBookingResponse, error)
}

type charterBookingService struct {
	repo *repository.Repository
	chat ChatService
	log  *zap.Logger
}

func NewCharterBookingService(repo *repository.Repository, chat ChatService, log *zap.Logger) CharterBookingService {
	return &charterBookingService{
		repo: repo,
		chat: chat,
		log:  log.With(zap.String("service", "charter_booking")),
	}
}

func (s *charterBookingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateCharterBookingRequest) (*response.CharterBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create charter booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	flights, err := s.repo.Flight.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to load flights", zap.Error(err))
		return nil, fmt.Errorf("load flights: %w", err)
	}

	flight, err := resolver.Resolve(flights, resolver.Request{
		From:     req.From,
		To:       req.To,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})
	if err != nil {
		// The flight the client saw no longer resolves: archived, window
		// moved, or weekday dropped. Same conflict as sold-out.
		var noMatch *resolver.NoMatchError
		if errors.As(err, &noMatch) {
			s.log.Info("Charter resolution failed",
				zap.String("from", req.From),
				zap.String("to", req.To),
				zap.String("reason", string(noMatch.Reason)))
			return nil, &ConflictError{Message: FlightUnavailableMessage}
		}
		return nil, err
	}

	departure, returnDate, err := parseDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.CharterBooking.SeatsTaken(ctx, flight.ID, departure)
	if err != nil {
		s.log.Error("Failed to count taken seats", zap.Error(err))
		return nil, fmt.Errorf("count seats: %w", err)
	}
	if int(taken)+req.Passengers > flight.SeatsTotal {
		s.log.Info("Flight sold out",
			zap.String("flight_id", flight.ID.String()),
			zap.Int64("taken", taken),
			zap.Int("requested", req.Passengers))
		return nil, &ConflictError{Message: FlightUnavailableMessage}
	}

	now := time.Now()
	booking := &entity.CharterBooking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:       utils.GenerateOrderID("CHR"),
		UserID:        userID,
		FlightID:      flight.ID,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		Passengers:    req.Passengers,
		Status:        entity.BookingStatusPending,
		Notes:         req.Notes,
	}

	if err := s.repo.CharterBooking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create charter booking: %w", err)
	}

	s.log.Info("Charter booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("flight_id", flight.ID.String()))

	resp := response.CharterBookingToResponse(booking, flight)
	return &resp, nil
}

func (s *charterBookingService) toResponses(ctx context.Context, bookings []*entity.CharterBooking) []response.CharterBookingResponse {
	flights := make(map[uuid.UUID]*entity.CharterFlight)
	items := make([]response.CharterBookingResponse, len(bookings))
	for i, booking := range bookings {
		flight, ok := flights[booking.FlightID]
		if !ok {
			flight, _ = s.repo.Flight.FindByID(ctx, booking.FlightID)
			flights[booking.FlightID] = flight
		}
		items[i] = response.CharterBookingToResponse(booking, flight)
	}
	return items
}

func (s *charterBookingService) ListMine(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CharterBookingResponse], error) {
	bookings, err := s.repo.CharterBooking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list charter bookings", zap.Error(err))
		return nil, fmt.Errorf("list charter bookings: %w", err)
	}

	total, err := s.repo.CharterBooking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count charter bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *charterBookingService) ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CharterBookingResponse], error) {
	bookings, err := s.repo.CharterBooking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list charter bookings", zap.Error(err))
		return nil, fmt.Errorf("list charter bookings: %w", err)
	}

	total, err := s.repo.CharterBooking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count charter bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *charterBookingService) GetByID(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, bookingID string) (*response.CharterBookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.CharterBooking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get charter booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.UserID != viewerID && !role.CanManage() {
		return nil, fmt.Errorf("unauthorized: booking belongs to another user")
	}

	flight, _ := s.repo.Flight.FindByID(ctx, booking.FlightID)
	resp := response.CharterBookingToResponse(booking, flight)
	return &resp, nil
}

func (s *charterBookingService) Cancel(ctx context.Context, userID uuid.UUID, bookingID string) (*response.CharterBookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.CharterBooking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get charter booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("unauthorized: booking belongs to another user")
	}
	if !booking.Status.Cancellable() {
		return nil, fmt.Errorf("booking %s is not cancellable in status %s", bookingID, booking.Status)
	}

	if err := s.repo.CharterBooking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel charter booking: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = time.Now()

	s.log.Info("Charter booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("order_id", booking.OrderID))

	s.chat.SendSystem(ctx, booking.ID, entity.ScopeCharter, userID, statusChangeText(booking.OrderID, booking.Status))

	flight, _ := s.repo.Flight.FindByID(ctx, booking.FlightID)
	resp := response.CharterBookingToResponse(booking, flight)
	return &resp, nil
}

func (s *charterBookingService) UpdateStatus(ctx context.Context, actorID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.CharterBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.CharterBooking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get charter booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	status := entity.BookingStatus(req.Status)
	if status != booking.Status {
		if err := s.repo.CharterBooking.UpdateStatus(ctx, id, status); err != nil {
			return nil, fmt.Errorf("update charter booking status: %w", err)
		}
		booking.Status = status
		booking.UpdatedAt = time.Now()

		s.log.Info("Charter booking status updated",
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status))

		s.chat.SendSystem(ctx, booking.ID, entity.ScopeCharter, actorID, statusChangeText(booking.OrderID, status))
	}

	flight, _ := s.repo.Flight.FindByID(ctx, booking.FlightID)
	resp := response.CharterBookingToResponse(booking, flight)
	return &resp, nil
}
