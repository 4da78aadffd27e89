package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base is embedded by every mutable aggregate (tours, flights, bookings,
// users). Archiving is a soft delete via DeletedAt.
type Base struct {
	ID        uuid.UUID  `db:"id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// BaseSimple is for append-only rows: chat messages, transport segments,
// sessions. They are never updated or soft-deleted.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
