package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a refresh-token session. The access token itself is a stateless
// JWT; refreshing requires a live session row.
type Session struct {
	BaseSimple
	UserID       uuid.UUID  `db:"user_id"`
	RefreshToken uuid.UUID  `db:"refresh_token"`
	UserAgent    *string    `db:"user_agent"`
	IPAddress    *string    `db:"ip_address"`
	ExpiresAt    time.Time  `db:"expires_at"`
	RevokedAt    *time.Time `db:"revoked_at"`
}
