package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type FlightResponse struct {
	ID          string    `json:"id" validate:"required,uuid4"`
	From        string    `json:"from" validate:"required"`
	To          string    `json:"to" validate:"required"`
	DateFrom    string    `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo      string    `json:"date_to" validate:"required,datetime=2006-01-02"`
	WeekDays    []int     `json:"week_days" validate:"required,min=1,dive,min=1,max=7"`
	SeatsTotal  int       `json:"seats_total" validate:"gte=0"`
	SeatsLeft   int       `json:"seats_left" validate:"gte=0"`
	Categories  []string  `json:"categories"`
	HasBusiness bool      `json:"has_business"`
	HasComfort  bool      `json:"has_comfort"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FlightToResponse(f *entity.CharterFlight, seatsLeft int) FlightResponse {
	return FlightResponse{
		ID:          f.ID.String(),
		From:        f.From,
		To:          f.To,
		DateFrom:    f.DateFrom.Format("2006-01-02"),
		DateTo:      f.DateTo.Format("2006-01-02"),
		WeekDays:    f.WeekDays,
		SeatsTotal:  f.SeatsTotal,
		SeatsLeft:   seatsLeft,
		Categories:  f.Categories,
		HasBusiness: f.HasBusiness,
		HasComfort:  f.HasComfort,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
	}
}
