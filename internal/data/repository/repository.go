package repository

import (
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User             UserRepository
	Session          SessionRepository
	Tour             TourRepository
	Flight           FlightRepository
	Booking          BookingRepository
	CharterBooking   CharterBookingRepository
	TransportBooking TransportBookingRepository
	Message          MessageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:             NewUserRepository(db, log),
		Session:          NewSessionRepository(db, log),
		Tour:             NewTourRepository(db, log),
		Flight:           NewFlightRepository(db, log),
		Booking:          NewBookingRepository(db, log),
		CharterBooking:   NewCharterBookingRepository(db, log),
		TransportBooking: NewTransportBookingRepository(db, log),
		Message:          NewMessageRepository(db, log),
	}
}
