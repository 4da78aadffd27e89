package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type TransportSegmentResponse struct {
	ID            string                  `json:"id" validate:"required,uuid4"`
	Direction     entity.SegmentDirection `json:"direction" validate:"required,oneof=FORWARD RETURN"`
	DepartureDate string                  `json:"departure_date" validate:"required,datetime=2006-01-02"`
	FlightNumber  string                  `json:"flight_number" validate:"required"`
	From          string                  `json:"from" validate:"required"`
	To            string                  `json:"to" validate:"required"`
	Passengers    entity.PassengerCounts  `json:"passengers"`
}

type TransportBookingResponse struct {
	ID         string                     `json:"id" validate:"required,uuid4"`
	OrderID    string                     `json:"order_id" validate:"required"`
	UserID     string                     `json:"user_id" validate:"required,uuid4"`
	Status     entity.BookingStatus       `json:"status" validate:"required"`
	StatusMeta entity.StatusMeta          `json:"status_meta"`
	Notes      *string                    `json:"notes,omitempty"`
	Segments   []TransportSegmentResponse `json:"segments" validate:"min=1"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
}

func TransportSegmentToResponse(s *entity.TransportSegment) TransportSegmentResponse {
	return TransportSegmentResponse{
		ID:            s.ID.String(),
		Direction:     s.Direction,
		DepartureDate: s.DepartureDate.Format("2006-01-02"),
		FlightNumber:  s.FlightNumber,
		From:          s.From,
		To:            s.To,
		Passengers:    s.Passengers,
	}
}

func TransportBookingToResponse(b *entity.TransportBooking) TransportBookingResponse {
	segments := make([]TransportSegmentResponse, len(b.Segments))
	for i := range b.Segments {
		segments[i] = TransportSegmentToResponse(&b.Segments[i])
	}

	return TransportBookingResponse{
		ID:         b.ID.String(),
		OrderID:    b.OrderID,
		UserID:     b.UserID.String(),
		Status:     b.Status,
		StatusMeta: b.Status.Meta(),
		Notes:      b.Notes,
		Segments:   segments,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
