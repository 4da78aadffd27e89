package usecase

// FlightUnavailableMessage is shown to the user verbatim on booking
// conflicts, so it is localized here rather than at the HTTP layer.
const FlightUnavailableMessage = "Этот рейс больше недоступен"

// TourUnavailableMessage is the tour-scope equivalent.
const TourUnavailableMessage = "Этот тур больше недоступен"

// ConflictError marks failures caused by stale availability data: the
// offering was archived or sold out between the client's read and write.
// The adaptor maps it to HTTP 409 and passes Message through unchanged.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
