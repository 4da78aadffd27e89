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

type TourRepository interface {
	Create(ctx context.Context, tour *entity.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	FindAll(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.Tour, error)
	Count(ctx context.Context, activeOnly bool) (int64, error)
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

const tourColumns = `id, title, destination, description, price, date_from, date_to, seats_total, is_active, created_at, updated_at`

func scanTour(row pgx.Row) (*entity.Tour, error) {
	var tour entity.Tour
	err := row.Scan(
		&tour.ID,
		&tour.Title,
		&tour.Destination,
		&tour.Description,
		&tour.Price,
		&tour.DateFrom,
		&tour.DateTo,
		&tour.SeatsTotal,
		&tour.IsActive,
		&tour.CreatedAt,
		&tour.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	query := `
		INSERT INTO tours (` + tourColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.Destination,
		tour.Description,
		tour.Price,
		tour.DateFrom,
		tour.DateTo,
		tour.SeatsTotal,
		tour.IsActive,
		tour.CreatedAt,
		tour.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.String("title", tour.Title),
		)
		return fmt.Errorf("create tour %s: %w", tour.Title, err)
	}

	return nil
}

func (r *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`

	tour, err := scanTour(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return nil, fmt.Errorf("find tour by ID %s: %w", id.String(), err)
	}

	return tour, nil
}

func (r *tourRepository) FindAll(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE ($1 = false OR is_active = true)
		ORDER BY date_from ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		r.log.Error("Failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tour row: %w", err)
		}
		tours = append(tours, tour)
	}

	return tours, rows.Err()
}

func (r *tourRepository) Count(ctx context.Context, activeOnly bool) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tours WHERE ($1 = false OR is_active = true)`,
		activeOnly,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count tours: %w", err)
	}
	return total, nil
}

func (r *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	query := `
		UPDATE tours
		SET title = $1, destination = $2, description = $3, price = $4,
			date_from = $5, date_to = $6, seats_total = $7, is_active = $8, updated_at = $9
		WHERE id = $10
	`

	tag, err := r.db.Exec(ctx, query,
		tour.Title,
		tour.Destination,
		tour.Description,
		tour.Price,
		tour.DateFrom,
		tour.DateTo,
		tour.SeatsTotal,
		tour.IsActive,
		tour.UpdatedAt,
		tour.ID,
	)

	if err != nil {
		r.log.Error("Failed to update tour",
			zap.Error(err),
			zap.String("tour_id", tour.ID.String()),
		)
		return fmt.Errorf("update tour %s: %w", tour.ID.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", tour.ID.String())
	}

	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete tour",
			zap.Error(err),
			zap.String("tour_id", id.String()),
		)
		return fmt.Errorf("delete tour %s: %w", id.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tour %s not found", id.String())
	}

	return nil
}
