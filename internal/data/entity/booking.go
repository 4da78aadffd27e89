package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// Booking is a client's request against a tour.
type Booking struct {
	Base
	OrderID       string        `db:"order_id"`
	UserID        uuid.UUID     `db:"user_id"`
	TourID        uuid.UUID     `db:"tour_id"`
	PartySize     int           `db:"party_size"`
	TotalPrice    float64       `db:"total_price"`
	Status        BookingStatus `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	Notes         *string       `db:"notes"`
}
