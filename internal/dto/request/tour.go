package request

type CreateTourRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Destination string  `json:"destination" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	DateFrom    string  `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo      string  `json:"date_to" validate:"required,datetime=2006-01-02"`
	SeatsTotal  int     `json:"seats_total" validate:"required,min=1"`
}

type UpdateTourRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Destination *string  `json:"destination,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	DateFrom    *string  `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo      *string  `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SeatsTotal  *int     `json:"seats_total,omitempty" validate:"omitempty,min=1"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
