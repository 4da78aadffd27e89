package request

type CreateBookingRequest struct {
	TourID    string  `json:"tour_id" validate:"required,uuid4"`
	PartySize int     `json:"party_size" validate:"required,min=1,max=50"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// CreateCharterBookingRequest carries the desired route and dates; the server
// resolves the concrete flight.
type CreateCharterBookingRequest struct {
	From       string  `json:"from" validate:"required"`
	To         string  `json:"to" validate:"required"`
	DateFrom   string  `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo     string  `json:"date_to" validate:"required,datetime=2006-01-02"`
	Passengers int     `json:"passengers" validate:"required,min=1,max=100"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CANCELLED IN_PROGRESS COMPLETED"`
}
