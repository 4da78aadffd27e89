package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testTour(id uuid.UUID, seats int, active bool) *entity.Tour {
	now := time.Now()
	return &entity.Tour{
		Base:        entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		Title:       "Анталья все включено",
		Destination: "Анталья",
		Price:       1200,
		DateFrom:    now,
		DateTo:      now.AddDate(0, 1, 0),
		SeatsTotal:  seats,
		IsActive:    active,
	}
}

func testBooking(id, userID uuid.UUID, status entity.BookingStatus) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base:          entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		OrderID:       "TUR-20250601-ABC123",
		UserID:        userID,
		TourID:        uuid.New(),
		PartySize:     2,
		TotalPrice:    2400,
		Status:        status,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}
}

func newBookingService(repo *repository.Repository, chat ChatService) BookingService {
	return NewBookingService(repo, chat, zap.NewNop())
}

func TestCreateBookingComputesTotalPrice(t *testing.T) {
	tourID := uuid.New()
	userID := uuid.New()

	var created *entity.Booking
	repo := &repository.Repository{
		Tour: &mockTourRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
				return testTour(tourID, 10, true), nil
			},
		},
		Booking: &mockBookingRepo{
			CountActiveByTourFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
				return 3, nil
			},
			CreateFn: func(ctx context.Context, b *entity.Booking) error {
				created = b
				return nil
			},
		},
	}

	svc := newBookingService(repo, &recordingChat{})
	resp, err := svc.Create(context.Background(), userID, &request.CreateBookingRequest{
		TourID:    tourID.String(),
		PartySize: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, entity.BookingStatusPending, created.Status)
	assert.Equal(t, 2400.0, created.TotalPrice)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, "Ожидает подтверждения", resp.StatusMeta.Label)
}

func TestCreateBookingSoldOutConflict(t *testing.T) {
	tourID := uuid.New()

	repo := &repository.Repository{
		Tour: &mockTourRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
				return testTour(tourID, 10, true), nil
			},
		},
		Booking: &mockBookingRepo{
			CountActiveByTourFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
				return 9, nil
			},
		},
	}

	svc := newBookingService(repo, &recordingChat{})
	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateBookingRequest{
		TourID:    tourID.String(),
		PartySize: 2,
	})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, TourUnavailableMessage, conflict.Message)
}

func TestCreateBookingArchivedTourConflict(t *testing.T) {
	tourID := uuid.New()

	repo := &repository.Repository{
		Tour: &mockTourRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
				return testTour(tourID, 10, false), nil
			},
		},
	}

	svc := newBookingService(repo, &recordingChat{})
	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateBookingRequest{
		TourID:    tourID.String(),
		PartySize: 1,
	})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, TourUnavailableMessage, conflict.Message)
}

func TestCancelRejectsForeignBooking(t *testing.T) {
	owner := uuid.New()
	booking := testBooking(uuid.New(), owner, entity.BookingStatusPending)

	repo := &repository.Repository{
		Booking: &mockBookingRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return booking, nil
			},
		},
	}

	svc := newBookingService(repo, &recordingChat{})
	_, err := svc.Cancel(context.Background(), uuid.New(), booking.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestCancelTerminalStatuses(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		status  entity.BookingStatus
		allowed bool
	}{
		{entity.BookingStatusPending, true},
		{entity.BookingStatusConfirmed, true},
		{entity.BookingStatusInProgress, true},
		{entity.BookingStatusCancelled, false},
		{entity.BookingStatusCompleted, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			booking := testBooking(uuid.New(), owner, tc.status)

			var newStatus entity.BookingStatus
			repo := &repository.Repository{
				Booking: &mockBookingRepo{
					FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
						return booking, nil
					},
					UpdateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
						newStatus = status
						return nil
					},
				},
				Tour: &mockTourRepo{
					FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
						return nil, nil
					},
				},
			}

			svc := newBookingService(repo, &recordingChat{})
			resp, err := svc.Cancel(context.Background(), owner, booking.ID.String())

			if !tc.allowed {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "not cancellable")
				return
			}
			require.NoError(t, err)
			// The only transition a client may trigger is to CANCELLED.
			assert.Equal(t, entity.BookingStatusCancelled, newStatus)
			assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
		})
	}
}

func TestUpdateStatusEmitsSystemMessage(t *testing.T) {
	booking := testBooking(uuid.New(), uuid.New(), entity.BookingStatusPending)

	repo := &repository.Repository{
		Booking: &mockBookingRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return booking, nil
			},
			UpdateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
				return nil
			},
		},
		Tour: &mockTourRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
				return nil, nil
			},
		},
	}

	chat := &recordingChat{}
	svc := newBookingService(repo, chat)
	resp, err := svc.UpdateStatus(context.Background(), uuid.New(), booking.ID.String(), &request.UpdateBookingStatusRequest{
		Status: "CONFIRMED",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	require.Len(t, chat.systemTexts, 1)
	assert.Contains(t, chat.systemTexts[0], "Подтверждено")
	assert.Contains(t, chat.systemTexts[0], booking.OrderID)
}

func TestUpdateStatusSameStatusIsNoop(t *testing.T) {
	booking := testBooking(uuid.New(), uuid.New(), entity.BookingStatusConfirmed)

	repo := &repository.Repository{
		Booking: &mockBookingRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return booking, nil
			},
			UpdateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
				return errors.New("must not be called")
			},
		},
		Tour: &mockTourRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
				return nil, nil
			},
		},
	}

	chat := &recordingChat{}
	svc := newBookingService(repo, chat)
	_, err := svc.UpdateStatus(context.Background(), uuid.New(), booking.ID.String(), &request.UpdateBookingStatusRequest{
		Status: "CONFIRMED",
	})
	require.NoError(t, err)
	assert.Empty(t, chat.systemTexts)
}
