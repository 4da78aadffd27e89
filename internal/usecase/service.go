package usecase

import (
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Tour      TourService
	Flight    FlightService
	Booking   BookingService
	Charter   CharterBookingService
	Transport TransportBookingService
	Chat      ChatService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	chat := NewChatService(repo, log)
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo, log),
		Tour:      NewTourService(repo, log),
		Flight:    NewFlightService(repo, log),
		Booking:   NewBookingService(repo, chat, log),
		Charter:   NewCharterBookingService(repo, chat, log),
		Transport: NewTransportBookingService(repo, chat, log),
		Chat:      chat,
	}
}
