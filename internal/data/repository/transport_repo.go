package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransportBookingRepository interface {
	// Create saves the booking and its segments in one transaction.
	Create(ctx context.Context, booking *entity.TransportBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportBooking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TransportBooking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.TransportBooking, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

type transportBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransportBookingRepository(db database.PgxIface, log *zap.Logger) TransportBookingRepository {
	return &transportBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "transport_booking")),
	}
}

const transportBookingColumns = `id, order_id, user_id, status, notes, created_at, updated_at`

const segmentColumns = `id, booking_id, direction, departure_date, flight_number, from_city, to_city,
	adults, children, infants, infants_without_seat,
	adults_business, children_business, infants_business,
	adults_comfort, children_comfort, infants_comfort, created_at`

func scanTransportBooking(row pgx.Row) (*entity.TransportBooking, error) {
	var booking entity.TransportBooking
	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.UserID,
		&booking.Status,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func scanSegment(row pgx.Row) (*entity.TransportSegment, error) {
	var seg entity.TransportSegment
	err := row.Scan(
		&seg.ID,
		&seg.BookingID,
		&seg.Direction,
		&seg.DepartureDate,
		&seg.FlightNumber,
		&seg.From,
		&seg.To,
		&seg.Passengers.Adults,
		&seg.Passengers.Children,
		&seg.Passengers.Infants,
		&seg.Passengers.InfantsWithoutSeat,
		&seg.Passengers.AdultsBusiness,
		&seg.Passengers.ChildrenBusiness,
		&seg.Passengers.InfantsBusiness,
		&seg.Passengers.AdultsComfort,
		&seg.Passengers.ChildrenComfort,
		&seg.Passengers.InfantsComfort,
		&seg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &seg, nil
}

func (r *transportBookingRepository) Create(ctx context.Context, booking *entity.TransportBooking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transport booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO transport_bookings (`+transportBookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		booking.ID,
		booking.OrderID,
		booking.UserID,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create transport booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
		)
		return fmt.Errorf("create transport booking %s: %w", booking.OrderID, err)
	}

	for i := range booking.Segments {
		seg := &booking.Segments[i]
		_, err = tx.Exec(ctx, `
			INSERT INTO transport_segments (`+segmentColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		`,
			seg.ID,
			seg.BookingID,
			seg.Direction,
			seg.DepartureDate,
			seg.FlightNumber,
			seg.From,
			seg.To,
			seg.Passengers.Adults,
			seg.Passengers.Children,
			seg.Passengers.Infants,
			seg.Passengers.InfantsWithoutSeat,
			seg.Passengers.AdultsBusiness,
			seg.Passengers.ChildrenBusiness,
			seg.Passengers.InfantsBusiness,
			seg.Passengers.AdultsComfort,
			seg.Passengers.ChildrenComfort,
			seg.Passengers.InfantsComfort,
			seg.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create transport segment",
				zap.Error(err),
				zap.String("order_id", booking.OrderID),
				zap.Int("segment", i),
			)
			return fmt.Errorf("create transport segment %d of %s: %w", i, booking.OrderID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transport booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *transportBookingRepository) loadSegments(ctx context.Context, bookingID uuid.UUID) ([]entity.TransportSegment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+segmentColumns+`
		FROM transport_segments
		WHERE booking_id = $1
		ORDER BY created_at ASC, direction ASC
	`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("load segments for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var segments []entity.TransportSegment
	for rows.Next() {
		seg, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan segment row: %w", err)
		}
		segments = append(segments, *seg)
	}

	return segments, rows.Err()
}

func (r *transportBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportBooking, error) {
	query := `SELECT ` + transportBookingColumns + ` FROM transport_bookings WHERE id = $1`

	booking, err := scanTransportBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find transport booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find transport booking by ID %s: %w", id.String(), err)
	}

	booking.Segments, err = r.loadSegments(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *transportBookingRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.TransportBooking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*entity.TransportBooking
	for rows.Next() {
		booking, err := scanTransportBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transport booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, booking := range bookings {
		booking.Segments, err = r.loadSegments(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
	}

	return bookings, nil
}

func (r *transportBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TransportBooking, error) {
	bookings, err := r.findMany(ctx, `
		SELECT `+transportBookingColumns+`
		FROM transport_bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find transport bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find transport bookings by user ID %s: %w", userID.String(), err)
	}
	return bookings, nil
}

func (r *transportBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transport_bookings WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count transport bookings by user ID %s: %w", userID.String(), err)
	}
	return total, nil
}

func (r *transportBookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.TransportBooking, error) {
	bookings, err := r.findMany(ctx, `
		SELECT `+transportBookingColumns+`
		FROM transport_bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		r.log.Error("Failed to list transport bookings", zap.Error(err))
		return nil, fmt.Errorf("list transport bookings: %w", err)
	}
	return bookings, nil
}

func (r *transportBookingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transport_bookings`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count transport bookings: %w", err)
	}
	return total, nil
}

func (r *transportBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE transport_bookings SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		r.log.Error("Failed to update transport booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update transport booking status %s: %w", id.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transport booking %s not found", id.String())
	}

	return nil
}
