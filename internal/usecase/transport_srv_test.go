package usecase

import (
	"context"
	"testing"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func TestCreateTransportBookingDirectionDefaults(t *testing.T) {
	var created *entity.TransportBooking
	repo := &repository.Repository{
		TransportBooking: &mockTransportBookingRepo{
			CreateFn: func(ctx context.Context, b *entity.TransportBooking) error {
				created = b
				return nil
			},
		},
	}

	svc := NewTransportBookingService(repo, &recordingChat{}, zap.NewNop())
	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateTransportBookingRequest{
		Segments: []request.TransportSegmentInput{
			{
				DepartureDate: "2025-07-01",
				FlightNumber:  "TK 410",
				From:          "Москва",
				To:            "Стамбул",
				Passengers:    request.PassengerCountsInput{Adults: intp(10)},
			},
			{
				DepartureDate: "2025-07-10",
				FlightNumber:  "TK 411",
				From:          "Стамбул",
				To:            "Москва",
				Passengers:    request.PassengerCountsInput{Adults: intp(10)},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Segments, 2)

	assert.Equal(t, entity.DirectionForward, created.Segments[0].Direction)
	assert.Equal(t, entity.DirectionReturn, created.Segments[1].Direction)
	assert.Equal(t, entity.BookingStatusPending, created.Status)
}

func TestCreateTransportBookingExplicitDirectionWins(t *testing.T) {
	var created *entity.TransportBooking
	repo := &repository.Repository{
		TransportBooking: &mockTransportBookingRepo{
			CreateFn: func(ctx context.Context, b *entity.TransportBooking) error {
				created = b
				return nil
			},
		},
	}

	svc := NewTransportBookingService(repo, &recordingChat{}, zap.NewNop())
	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateTransportBookingRequest{
		Segments: []request.TransportSegmentInput{
			{
				Direction:     strp("RETURN"),
				DepartureDate: "2025-07-01",
				FlightNumber:  "TK 410",
				From:          "Стамбул",
				To:            "Москва",
				Passengers:    request.PassengerCountsInput{Adults: intp(5)},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionReturn, created.Segments[0].Direction)
}

func TestCreateTransportBookingRejectsEmptySegment(t *testing.T) {
	repo := &repository.Repository{
		TransportBooking: &mockTransportBookingRepo{},
	}

	svc := NewTransportBookingService(repo, &recordingChat{}, zap.NewNop())
	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateTransportBookingRequest{
		Segments: []request.TransportSegmentInput{
			{
				DepartureDate: "2025-07-01",
				FlightNumber:  "TK 410",
				From:          "Москва",
				To:            "Стамбул",
				// No counters at all: every one normalizes to zero.
			},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no passengers")
}

func TestCreateTransportBookingNormalizesAllCounters(t *testing.T) {
	var created *entity.TransportBooking
	repo := &repository.Repository{
		TransportBooking: &mockTransportBookingRepo{
			CreateFn: func(ctx context.Context, b *entity.TransportBooking) error {
				created = b
				return nil
			},
		},
	}

	svc := NewTransportBookingService(repo, &recordingChat{}, zap.NewNop())
	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateTransportBookingRequest{
		Segments: []request.TransportSegmentInput{
			{
				DepartureDate: "2025-07-01",
				FlightNumber:  "TK 410",
				From:          "Москва",
				To:            "Стамбул",
				Passengers: request.PassengerCountsInput{
					Adults:         intp(4),
					AdultsBusiness: intp(2),
					InfantsComfort: intp(1),
				},
			},
		},
	})
	require.NoError(t, err)

	counts := created.Segments[0].Passengers
	assert.Equal(t, 4, counts.Adults)
	assert.Equal(t, 2, counts.AdultsBusiness)
	assert.Equal(t, 1, counts.InfantsComfort)
	assert.Equal(t, 0, counts.Children)
	assert.Equal(t, 0, counts.InfantsWithoutSeat)
	assert.Equal(t, 7, counts.Total())
}
