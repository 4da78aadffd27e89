package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id" validate:"required,uuid4"`
	OrderID       string               `json:"order_id" validate:"required"`
	UserID        string               `json:"user_id" validate:"required,uuid4"`
	TourID        string               `json:"tour_id" validate:"required,uuid4"`
	TourTitle     string               `json:"tour_title,omitempty"`
	Destination   string               `json:"destination,omitempty"`
	PartySize     int                  `json:"party_size" validate:"gte=1"`
	TotalPrice    float64              `json:"total_price" validate:"gte=0"`
	Status        entity.BookingStatus `json:"status" validate:"required"`
	StatusMeta    entity.StatusMeta    `json:"status_meta"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	Notes         *string              `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking, tour *entity.Tour) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID.String(),
		OrderID:       b.OrderID,
		UserID:        b.UserID.String(),
		TourID:        b.TourID.String(),
		PartySize:     b.PartySize,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		StatusMeta:    b.Status.Meta(),
		PaymentStatus: b.PaymentStatus,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if tour != nil {
		resp.TourTitle = tour.Title
		resp.Destination = tour.Destination
	}
	return resp
}

type CharterBookingResponse struct {
	ID            string               `json:"id" validate:"required,uuid4"`
	OrderID       string               `json:"order_id" validate:"required"`
	UserID        string               `json:"user_id" validate:"required,uuid4"`
	FlightID      string               `json:"flight_id" validate:"required,uuid4"`
	From          string               `json:"from,omitempty"`
	To            string               `json:"to,omitempty"`
	DepartureDate string               `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string               `json:"return_date" validate:"required,datetime=2006-01-02"`
	Passengers    int                  `json:"passengers" validate:"gte=1"`
	Status        entity.BookingStatus `json:"status" validate:"required"`
	StatusMeta    entity.StatusMeta    `json:"status_meta"`
	Notes         *string              `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func CharterBookingToResponse(b *entity.CharterBooking, flight *entity.CharterFlight) CharterBookingResponse {
	resp := CharterBookingResponse{
		ID:            b.ID.String(),
		OrderID:       b.OrderID,
		UserID:        b.UserID.String(),
		FlightID:      b.FlightID.String(),
		DepartureDate: b.DepartureDate.Format("2006-01-02"),
		ReturnDate:    b.ReturnDate.Format("2006-01-02"),
		Passengers:    b.Passengers,
		Status:        b.Status,
		StatusMeta:    b.Status.Meta(),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if flight != nil {
		resp.From = flight.From
		resp.To = flight.To
	}
	return resp
}
