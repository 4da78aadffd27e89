package usecase

import (
	"context"
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

func testFlight(from, to string, weekDays []int, seats int) *entity.CharterFlight {
	now := time.Now()
	return &entity.CharterFlight{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		From:       from,
		To:         to,
		DateFrom:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
		WeekDays:   weekDays,
		SeatsTotal: seats,
		IsActive:   true,
	}
}

func newCharterService(repo *repository.Repository, chat ChatService) CharterBookingService {
	return NewCharterBookingService(repo, chat, zap.NewNop())
}

// 2025-06-02 is a Monday, 2025-06-09 too.
var charterReq = request.CreateCharterBookingRequest{
	From:       "Москва",
	To:         "Анталья",
	DateFrom:   "2025-06-02",
	DateTo:     "2025-06-09",
	Passengers: 2,
}

func TestCreateCharterBookingResolvesFlight(t *testing.T) {
	flight := testFlight("Москва", "Анталья", []int{1, 5}, 180)

	var created *entity.CharterBooking
	repo := &repository.Repository{
		Flight: &mockFlightRepo{
			FindActiveFn: func(ctx context.Context) ([]*entity.CharterFlight, error) {
				return []*entity.CharterFlight{flight}, nil
			},
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.CharterFlight, error) {
				return flight, nil
			},
		},
		CharterBooking: &mockCharterBookingRepo{
			SeatsTakenFn: func(ctx context.Context, flightID uuid.UUID, departure time.Time) (int64, error) {
				return 100, nil
			},
			CreateFn: func(ctx context.Context, b *entity.CharterBooking) error {
				created = b
				return nil
			},
		},
	}

	svc := newCharterService(repo, &recordingChat{})
	resp, err := svc.Create(context.Background(), uuid.New(), &charterReq)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, flight.ID, created.FlightID)
	assert.Equal(t, entity.BookingStatusPending, created.Status)
	assert.Equal(t, "2025-06-02", resp.DepartureDate)
	assert.Equal(t, "Москва", resp.From)
}

func TestCreateCharterBookingNoRouteConflict(t *testing.T) {
	flight := testFlight("Сочи", "Анталья", []int{1}, 180)

	repo := &repository.Repository{
		Flight: &mockFlightRepo{
			FindActiveFn: func(ctx context.Context) ([]*entity.CharterFlight, error) {
				return []*entity.CharterFlight{flight}, nil
			},
		},
	}

	svc := newCharterService(repo, &recordingChat{})
	_, err := svc.Create(context.Background(), uuid.New(), &charterReq)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Этот рейс больше недоступен", conflict.Message)
}

func TestCreateCharterBookingSoldOutConflict(t *testing.T) {
	flight := testFlight("Москва", "Анталья", []int{1}, 180)

	repo := &repository.Repository{
		Flight: &mockFlightRepo{
			FindActiveFn: func(ctx context.Context) ([]*entity.CharterFlight, error) {
				return []*entity.CharterFlight{flight}, nil
			},
		},
		CharterBooking: &mockCharterBookingRepo{
			SeatsTakenFn: func(ctx context.Context, flightID uuid.UUID, departure time.Time) (int64, error) {
				return 179, nil
			},
		},
	}

	svc := newCharterService(repo, &recordingChat{})
	_, err := svc.Create(context.Background(), uuid.New(), &charterReq)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, FlightUnavailableMessage, conflict.Message)
}

func TestCreateCharterBookingFirstMatchWins(t *testing.T) {
	first := testFlight("Москва", "Анталья", []int{1}, 180)
	second := testFlight("Москва", "Анталья", []int{1}, 200)

	var created *entity.CharterBooking
	repo := &repository.Repository{
		Flight: &mockFlightRepo{
			FindActiveFn: func(ctx context.Context) ([]*entity.CharterFlight, error) {
				return []*entity.CharterFlight{first, second}, nil
			},
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.CharterFlight, error) {
				return first, nil
			},
		},
		CharterBooking: &mockCharterBookingRepo{
			SeatsTakenFn: func(ctx context.Context, flightID uuid.UUID, departure time.Time) (int64, error) {
				return 0, nil
			},
			CreateFn: func(ctx context.Context, b *entity.CharterBooking) error {
				created = b
				return nil
			},
		},
	}

	svc := newCharterService(repo, &recordingChat{})
	_, err := svc.Create(context.Background(), uuid.New(), &charterReq)
	require.NoError(t, err)
	assert.Equal(t, first.ID, created.FlightID)
}
