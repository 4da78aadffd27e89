package request

type CreateFlightRequest struct {
	From        string   `json:"from" validate:"required,min=2,max=100"`
	To          string   `json:"to" validate:"required,min=2,max=100"`
	DateFrom    string   `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo      string   `json:"date_to" validate:"required,datetime=2006-01-02"`
	WeekDays    []int    `json:"week_days" validate:"required,min=1,max=7,unique,dive,min=1,max=7"`
	SeatsTotal  int      `json:"seats_total" validate:"required,min=1"`
	Categories  []string `json:"categories" validate:"dive,min=1,max=50"`
	HasBusiness bool     `json:"has_business"`
	HasComfort  bool     `json:"has_comfort"`
}

type UpdateFlightRequest struct {
	DateFrom    *string  `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo      *string  `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WeekDays    []int    `json:"week_days,omitempty" validate:"omitempty,min=1,max=7,unique,dive,min=1,max=7"`
	SeatsTotal  *int     `json:"seats_total,omitempty" validate:"omitempty,min=1"`
	Categories  []string `json:"categories,omitempty" validate:"omitempty,dive,min=1,max=50"`
	HasBusiness *bool    `json:"has_business,omitempty"`
	HasComfort  *bool    `json:"has_comfort,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// ResolveFlightRequest mirrors the resolver input: route plus date-only
// travel window.
type ResolveFlightRequest struct {
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	DateFrom string `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo   string `json:"date_to" validate:"required,datetime=2006-01-02"`
}
