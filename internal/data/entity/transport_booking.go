package entity

import (
	"time"

	"github.com/google/uuid"
)

type SegmentDirection string

const (
	DirectionForward SegmentDirection = "FORWARD"
	DirectionReturn  SegmentDirection = "RETURN"
)

// PassengerCounts breaks a segment's party down by cabin class and age
// bucket. Ten counters total; absent inputs normalize to zero.
type PassengerCounts struct {
	Adults                int `db:"adults" json:"adults"`
	Children              int `db:"children" json:"children"`
	Infants               int `db:"infants" json:"infants"`
	InfantsWithoutSeat    int `db:"infants_without_seat" json:"infantsWithoutSeat"`
	AdultsBusiness        int `db:"adults_business" json:"adultsBusiness"`
	ChildrenBusiness      int `db:"children_business" json:"childrenBusiness"`
	InfantsBusiness       int `db:"infants_business" json:"infantsBusiness"`
	AdultsComfort         int `db:"adults_comfort" json:"adultsComfort"`
	ChildrenComfort       int `db:"children_comfort" json:"childrenComfort"`
	InfantsComfort        int `db:"infants_comfort" json:"infantsComfort"`
}

// Total sums every counter.
func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants + p.InfantsWithoutSeat +
		p.AdultsBusiness + p.ChildrenBusiness + p.InfantsBusiness +
		p.AdultsComfort + p.ChildrenComfort + p.InfantsComfort
}

// TransportSegment is one directional leg of a group-transport booking.
type TransportSegment struct {
	BaseSimple
	BookingID     uuid.UUID        `db:"booking_id"`
	Direction     SegmentDirection `db:"direction"`
	DepartureDate time.Time        `db:"departure_date"`
	FlightNumber  string           `db:"flight_number"`
	From          string           `db:"from_city"`
	To            string           `db:"to_city"`
	Passengers    PassengerCounts
}

// TransportBooking groups one or more segments; the first segment is always
// the forward leg.
type TransportBooking struct {
	Base
	OrderID string        `db:"order_id"`
	UserID  uuid.UUID     `db:"user_id"`
	Status  BookingStatus `db:"status"`
	Notes   *string       `db:"notes"`

	Segments []TransportSegment
}
