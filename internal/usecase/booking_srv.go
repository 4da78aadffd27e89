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

type BookingService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetByID(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, bookingID string) (*response.BookingResponse, error)

	// Cancel is the client-side transition: only the owner, and only while
	// the booking is still cancellable.
	Cancel(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)

	// Manager/admin management.
	ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	chat ChatService
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, chat ChatService, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		chat: chat,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", req.TourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}
	// A tour archived between the client's read and this write surfaces as
	// a conflict, not a not-found.
	if tour == nil || !tour.IsActive {
		return nil, &ConflictError{Message: TourUnavailableMessage}
	}

	taken, err := s.repo.Booking.CountActiveByTour(ctx, tourID)
	if err != nil {
		s.log.Error("Failed to count active bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	if int(taken)+req.PartySize > tour.SeatsTotal {
		s.log.Info("Tour sold out",
			zap.String("tour_id", tourID.String()),
			zap.Int64("taken", taken),
			zap.Int("requested", req.PartySize))
		return nil, &ConflictError{Message: TourUnavailableMessage}
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:       utils.GenerateOrderID("TUR"),
		UserID:        userID,
		TourID:        tourID,
		PartySize:     req.PartySize,
		TotalPrice:    tour.Price * float64(req.PartySize),
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Notes:         req.Notes,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("tour_id", tourID.String()))

	resp := response.BookingToResponse(booking, tour)
	return &resp, nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	// Tour titles are denormalized into the listing; lookups are cached per
	// distinct tour within the request.
	tours := make(map[uuid.UUID]*entity.Tour)
	items := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		tour, ok := tours[booking.TourID]
		if !ok {
			tour, _ = s.repo.Tour.FindByID(ctx, booking.TourID)
			tours[booking.TourID] = tour
		}
		items[i] = response.BookingToResponse(booking, tour)
	}
	return items
}

func (s *bookingService) ListMine(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetByID(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	if booking.UserID != viewerID && !role.CanManage() {
		return nil, fmt.Errorf("unauthorized: booking belongs to another user")
	}

	tour, _ := s.repo.Tour.FindByID(ctx, booking.TourID)
	resp := response.BookingToResponse(booking, tour)
	return &resp, nil
}

func (s *bookingService) Cancel(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
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

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = time.Now()

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("order_id", booking.OrderID))

	s.chat.SendSystem(ctx, booking.ID, entity.ScopeTours, userID, statusChangeText(booking.OrderID, booking.Status))

	tour, _ := s.repo.Tour.FindByID(ctx, booking.TourID)
	resp := response.BookingToResponse(booking, tour)
	return &resp, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, actorID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	status := entity.BookingStatus(req.Status)
	if status != booking.Status {
		if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
			return nil, fmt.Errorf("update booking status: %w", err)
		}
		booking.Status = status
		booking.UpdatedAt = time.Now()

		s.log.Info("Booking status updated",
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status))

		s.chat.SendSystem(ctx, booking.ID, entity.ScopeTours, actorID, statusChangeText(booking.OrderID, status))
	}

	tour, _ := s.repo.Tour.FindByID(ctx, booking.TourID)
	resp := response.BookingToResponse(booking, tour)
	return &resp, nil
}

// statusChangeText is the localized SYSTEM message posted into a booking's
// chat whenever the status changes.
func statusChangeText(orderID string, status entity.BookingStatus) string {
	return fmt.Sprintf("Статус заказа %s изменён: %s", orderID, status.Meta().Label)
}
