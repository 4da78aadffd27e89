package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type TourResponse struct {
	ID          string    `json:"id" validate:"required,uuid4"`
	Title       string    `json:"title" validate:"required"`
	Destination string    `json:"destination" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"gte=0"`
	DateFrom    string    `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo      string    `json:"date_to" validate:"required,datetime=2006-01-02"`
	SeatsTotal  int       `json:"seats_total" validate:"gte=0"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func TourToResponse(t *entity.Tour) TourResponse {
	return TourResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Destination: t.Destination,
		Description: t.Description,
		Price:       t.Price,
		DateFrom:    t.DateFrom.Format("2006-01-02"),
		DateTo:      t.DateTo.Format("2006-01-02"),
		SeatsTotal:  t.SeatsTotal,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}
