package repository

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CharterBookingRepository interface {
	Create(ctx context.Context, booking *entity.CharterBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CharterBooking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.CharterBooking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.CharterBooking, error)
	Count(ctx context.Context) (int64, error)
	// SeatsTaken sums passengers across seat-holding bookings for one
	// departure date of a flight.
	SeatsTaken(ctx context.Context, flightID uuid.UUID, departureDate time.Time) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

type charterBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCharterBookingRepository(db database.PgxIface, log *zap.Logger) CharterBookingRepository {
	return &charterBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "charter_booking")),
	}
}

const charterBookingColumns = `id, order_id, user_id, flight_id, departure_date, return_date, passengers, status, notes, created_at, updated_at`

func scanCharterBooking(row pgx.Row) (*entity.CharterBooking, error) {
	var booking entity.CharterBooking
	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.UserID,
		&booking.FlightID,
		&booking.DepartureDate,
		&booking.ReturnDate,
		&booking.Passengers,
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

func (r *charterBookingRepository) Create(ctx context.Context, booking *entity.CharterBooking) error {
	query := `
		INSERT INTO charter_bookings (` + charterBookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.OrderID,
		booking.UserID,
		booking.FlightID,
		booking.DepartureDate,
		booking.ReturnDate,
		booking.Passengers,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create charter booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.String("flight_id", booking.FlightID.String()),
		)
		return fmt.Errorf("create charter booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *charterBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CharterBooking, error) {
	query := `SELECT ` + charterBookingColumns + ` FROM charter_bookings WHERE id = $1`

	booking, err := scanCharterBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find charter booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find charter booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *charterBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.CharterBooking, error) {
	query := `
		SELECT ` + charterBookingColumns + `
		FROM charter_bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find charter bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find charter bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.CharterBooking
	for rows.Next() {
		booking, err := scanCharterBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan charter booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *charterBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM charter_bookings WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count charter bookings by user ID %s: %w", userID.String(), err)
	}
	return total, nil
}

func (r *charterBookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.CharterBooking, error) {
	query := `
		SELECT ` + charterBookingColumns + `
		FROM charter_bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list charter bookings", zap.Error(err))
		return nil, fmt.Errorf("list charter bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.CharterBooking
	for rows.Next() {
		booking, err := scanCharterBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan charter booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *charterBookingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM charter_bookings`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count charter bookings: %w", err)
	}
	return total, nil
}

func (r *charterBookingRepository) SeatsTaken(ctx context.Context, flightID uuid.UUID, departureDate time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(passengers), 0)
		FROM charter_bookings
		WHERE flight_id = $1 AND departure_date = $2 AND status IN ($3, $4, $5)
	`

	var total int64
	err := r.db.QueryRow(ctx, query, flightID, departureDate,
		entity.BookingStatusPending,
		entity.BookingStatusConfirmed,
		entity.BookingStatusInProgress,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count seats taken for flight %s: %w", flightID.String(), err)
	}
	return total, nil
}

func (r *charterBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE charter_bookings SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		r.log.Error("Failed to update charter booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update charter booking status %s: %w", id.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("charter booking %s not found", id.String())
	}

	return nil
}
