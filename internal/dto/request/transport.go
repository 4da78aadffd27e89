package request

import "travel-booking/internal/data/entity"

// PassengerCountsInput uses pointers so absent counters can be told apart
// from explicit zeros; Normalize collapses both to zero.
type PassengerCountsInput struct {
	Adults             *int `json:"adults,omitempty" validate:"omitempty,min=0,max=200"`
	Children           *int `json:"children,omitempty" validate:"omitempty,min=0,max=200"`
	Infants            *int `json:"infants,omitempty" validate:"omitempty,min=0,max=200"`
	InfantsWithoutSeat *int `json:"infantsWithoutSeat,omitempty" validate:"omitempty,min=0,max=200"`
	AdultsBusiness     *int `json:"adultsBusiness,omitempty" validate:"omitempty,min=0,max=200"`
	ChildrenBusiness   *int `json:"childrenBusiness,omitempty" validate:"omitempty,min=0,max=200"`
	InfantsBusiness    *int `json:"infantsBusiness,omitempty" validate:"omitempty,min=0,max=200"`
	AdultsComfort      *int `json:"adultsComfort,omitempty" validate:"omitempty,min=0,max=200"`
	ChildrenComfort    *int `json:"childrenComfort,omitempty" validate:"omitempty,min=0,max=200"`
	InfantsComfort     *int `json:"infantsComfort,omitempty" validate:"omitempty,min=0,max=200"`
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// Normalize maps every counter to a concrete int; nothing undefined survives.
func (p PassengerCountsInput) Normalize() entity.PassengerCounts {
	return entity.PassengerCounts{
		Adults:             deref(p.Adults),
		Children:           deref(p.Children),
		Infants:            deref(p.Infants),
		InfantsWithoutSeat: deref(p.InfantsWithoutSeat),
		AdultsBusiness:     deref(p.AdultsBusiness),
		ChildrenBusiness:   deref(p.ChildrenBusiness),
		InfantsBusiness:    deref(p.InfantsBusiness),
		AdultsComfort:      deref(p.AdultsComfort),
		ChildrenComfort:    deref(p.ChildrenComfort),
		InfantsComfort:     deref(p.InfantsComfort),
	}
}

// TransportSegmentInput is one leg of a group-transport booking. Direction is
// optional: the first segment defaults to FORWARD, later ones to RETURN.
type TransportSegmentInput struct {
	Direction     *string              `json:"direction,omitempty" validate:"omitempty,oneof=FORWARD RETURN"`
	DepartureDate string               `json:"departure_date" validate:"required,datetime=2006-01-02"`
	FlightNumber  string               `json:"flight_number" validate:"required,min=2,max=20"`
	From          string               `json:"from" validate:"required"`
	To            string               `json:"to" validate:"required"`
	Passengers    PassengerCountsInput `json:"passengers"`
}

type CreateTransportBookingRequest struct {
	Segments []TransportSegmentInput `json:"segments" validate:"required,min=1,dive"`
	Notes    *string                 `json:"notes,omitempty" validate:"omitempty,max=2000"`
}
