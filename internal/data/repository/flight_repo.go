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

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.CharterFlight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CharterFlight, error)
	// FindActive returns published flights in creation order; that order is
	// the resolver's only tie-break, so it must stay stable.
	FindActive(ctx context.Context) ([]*entity.CharterFlight, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.CharterFlight, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, flight *entity.CharterFlight) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

const flightColumns = `id, from_city, to_city, date_from, date_to, week_days, seats_total, categories, has_business, has_comfort, is_active, created_at, updated_at`

func scanFlight(row pgx.Row) (*entity.CharterFlight, error) {
	var flight entity.CharterFlight
	err := row.Scan(
		&flight.ID,
		&flight.From,
		&flight.To,
		&flight.DateFrom,
		&flight.DateTo,
		&flight.WeekDays,
		&flight.SeatsTotal,
		&flight.Categories,
		&flight.HasBusiness,
		&flight.HasComfort,
		&flight.IsActive,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) Create(ctx context.Context, flight *entity.CharterFlight) error {
	query := `
		INSERT INTO charter_flights (` + flightColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.From,
		flight.To,
		flight.DateFrom,
		flight.DateTo,
		flight.WeekDays,
		flight.SeatsTotal,
		flight.Categories,
		flight.HasBusiness,
		flight.HasComfort,
		flight.IsActive,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("from", flight.From),
			zap.String("to", flight.To),
		)
		return fmt.Errorf("create flight %s-%s: %w", flight.From, flight.To, err)
	}

	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CharterFlight, error) {
	query := `SELECT ` + flightColumns + ` FROM charter_flights WHERE id = $1`

	flight, err := scanFlight(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return flight, nil
}

func (r *flightRepository) FindActive(ctx context.Context) ([]*entity.CharterFlight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM charter_flights
		WHERE is_active = true
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list active flights", zap.Error(err))
		return nil, fmt.Errorf("list active flights: %w", err)
	}
	defer rows.Close()

	var flights []*entity.CharterFlight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, flight)
	}

	return flights, rows.Err()
}

func (r *flightRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.CharterFlight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM charter_flights
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list flights", zap.Error(err))
		return nil, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	var flights []*entity.CharterFlight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, flight)
	}

	return flights, rows.Err()
}

func (r *flightRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM charter_flights`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count flights: %w", err)
	}
	return total, nil
}

func (r *flightRepository) Update(ctx context.Context, flight *entity.CharterFlight) error {
	query := `
		UPDATE charter_flights
		SET date_from = $1, date_to = $2, week_days = $3, seats_total = $4,
			categories = $5, has_business = $6, has_comfort = $7, is_active = $8, updated_at = $9
		WHERE id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		flight.DateFrom,
		flight.DateTo,
		flight.WeekDays,
		flight.SeatsTotal,
		flight.Categories,
		flight.HasBusiness,
		flight.HasComfort,
		flight.IsActive,
		flight.UpdatedAt,
		flight.ID,
	)

	if err != nil {
		r.log.Error("Failed to update flight",
			zap.Error(err),
			zap.String("flight_id", flight.ID.String()),
		)
		return fmt.Errorf("update flight %s: %w", flight.ID.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", flight.ID.String())
	}

	return nil
}

func (r *flightRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE charter_flights SET is_active = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, active, id)
	if err != nil {
		r.log.Error("Failed to set flight active flag",
			zap.Error(err),
			zap.String("flight_id", id.String()),
			zap.Bool("active", active),
		)
		return fmt.Errorf("set flight %s active=%t: %w", id.String(), active, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", id.String())
	}

	return nil
}
