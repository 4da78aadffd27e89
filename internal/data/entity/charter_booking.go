package entity

import (
	"time"

	"github.com/google/uuid"
)

// CharterBooking is a client's request against a resolved charter flight.
// DepartureDate and ReturnDate are date-only values (UTC midnight).
type CharterBooking struct {
	Base
	OrderID       string        `db:"order_id"`
	UserID        uuid.UUID     `db:"user_id"`
	FlightID      uuid.UUID     `db:"flight_id"`
	DepartureDate time.Time     `db:"departure_date"`
	ReturnDate    time.Time     `db:"return_date"`
	Passengers    int           `db:"passengers"`
	Status        BookingStatus `db:"status"`
	Notes         *string       `db:"notes"`
}
