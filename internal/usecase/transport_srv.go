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

type TransportBookingService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateTransportBookingRequest) (*response.TransportBookingResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TransportBookingResponse], error)
	GetByID(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, bookingID string) (*response.TransportBookingResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID, bookingID string) (*response.TransportBookingResponse, error)

	// Manager/admin management.
	ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TransportBookingResponse], error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.TransportBookingResponse, error)
}

type transportBookingService struct {
	repo *repository.Repository
	chat ChatService
	log  *zap.Logger
}

func NewTransportBookingService(repo *repository.Repository, chat ChatService, log *zap.Logger) TransportBookingService {
	return &transportBookingService{
		repo: repo,
		chat: chat,
		log:  log.With(zap.String("service", "transport_booking")),
	}
}

func (s *transportBookingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateTransportBookingRequest) (*response.TransportBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create transport booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	booking := &entity.TransportBooking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID: utils.GenerateOrderID("GRT"),
		UserID:  userID,
		Status:  entity.BookingStatusPending,
		Notes:   req.Notes,
	}

	booking.Segments = make([]entity.TransportSegment, len(req.Segments))
	for i, in := range req.Segments {
		departure, err := parseDateOnly(in.DepartureDate)
		if err != nil {
			return nil, err
		}

		counts := in.Passengers.Normalize()
		if counts.Total() < 1 {
			return nil, fmt.Errorf("segment %d has no passengers", i+1)
		}

		// First leg defaults to FORWARD, every later one to RETURN.
		direction := entity.DirectionReturn
		if i == 0 {
			direction = entity.DirectionForward
		}
		if in.Direction != nil {
			direction = entity.SegmentDirection(*in.Direction)
		}

		booking.Segments[i] = entity.TransportSegment{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:     booking.ID,
			Direction:     direction,
			DepartureDate: departure,
			FlightNumber:  in.FlightNumber,
			From:          in.From,
			To:            in.To,
			Passengers:    counts,
		}
	}

	if err := s.repo.TransportBooking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create transport booking: %w", err)
	}

	s.log.Info("Transport booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.Int("segments", len(booking.Segments)))

	resp := response.TransportBookingToResponse(booking)
	return &resp, nil
}

func toTransportResponses(bookings []*entity.TransportBooking) []response.TransportBookingResponse {
	items := make([]response.TransportBookingResponse, len(bookings))
	for i, booking := range bookings {
		items[i] = response.TransportBookingToResponse(booking)
	}
	return items
}

func (s *transportBookingService) ListMine(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TransportBookingResponse], error) {
	bookings, err := s.repo.TransportBooking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list transport bookings", zap.Error(err))
		return nil, fmt.Errorf("list transport bookings: %w", err)
	}

	total, err := s.repo.TransportBooking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count transport bookings: %w", err)
	}

	return response.NewPaginatedResponse(toTransportResponses(bookings), req.Page, req.PerPage, total), nil
}

func (s *transportBookingService) ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TransportBookingResponse], error) {
	bookings, err := s.repo.TransportBooking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list transport bookings", zap.Error(err))
		return nil, fmt.Errorf("list transport bookings: %w", err)
	}

	total, err := s.repo.TransportBooking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count transport bookings: %w", err)
	}

	return response.NewPaginatedResponse(toTransportResponses(bookings), req.Page, req.PerPage, total), nil
}

func (s *transportBookingService) GetByID(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, bookingID string) (*response.TransportBookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.TransportBooking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transport booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.UserID != viewerID && !role.CanManage() {
		return nil, fmt.Errorf("unauthorized: booking belongs to another user")
	}

	resp := response.TransportBookingToResponse(booking)
	return &resp, nil
}

func (s *transportBookingService) Cancel(ctx context.Context, userID uuid.UUID, bookingID string) (*response.TransportBookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.TransportBooking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transport booking: %w", err)
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

	if err := s.repo.TransportBooking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel transport booking: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = time.Now()

	s.log.Info("Transport booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("order_id", booking.OrderID))

	s.chat.SendSystem(ctx, booking.ID, entity.ScopeGroupTransport, userID, statusChangeText(booking.OrderID, booking.Status))

	resp := response.TransportBookingToResponse(booking)
	return &resp, nil
}

func (s *transportBookingService) UpdateStatus(ctx context.Context, actorID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.TransportBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.TransportBooking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transport booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	status := entity.BookingStatus(req.Status)
	if status != booking.Status {
		if err := s.repo.TransportBooking.UpdateStatus(ctx, id, status); err != nil {
			return nil, fmt.Errorf("update transport booking status: %w", err)
		}
		booking.Status = status
		booking.UpdatedAt = time.Now()

		s.log.Info("Transport booking status updated",
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status))

		s.chat.SendSystem(ctx, booking.ID, entity.ScopeGroupTransport, actorID, statusChangeText(booking.OrderID, status))
	}

	resp := response.TransportBookingToResponse(booking)
	return &resp, nil
}
