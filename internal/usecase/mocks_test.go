package usecase

import (
	"context"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"

	"github.com/google/uuid"
)

// Func-field mocks: each test sets only the calls it expects.

type mockTourRepo struct {
	CreateFn   func(ctx context.Context, tour *entity.Tour) error
	FindByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Tour, error)
	FindAllFn  func(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.Tour, error)
	CountFn    func(ctx context.Context, activeOnly bool) (int64, error)
	UpdateFn   func(ctx context.Context, tour *entity.Tour) error
	DeleteFn   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTourRepo) Create(ctx context.Context, tour *entity.Tour) error {
	return m.CreateFn(ctx, tour)
}
func (m *mockTourRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tour, error) {
	return m.FindByIDFn(ctx, id)
}
func (m *mockTourRepo) FindAll(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.Tour, error) {
	return m.FindAllFn(ctx, activeOnly, limit, offset)
}
func (m *mockTourRepo) Count(ctx context.Context, activeOnly bool) (int64, error) {
	return m.CountFn(ctx, activeOnly)
}
func (m *mockTourRepo) Update(ctx context.Context, tour *entity.Tour) error {
	return m.UpdateFn(ctx, tour)
}
func (m *mockTourRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

type mockFlightRepo struct {
	CreateFn     func(ctx context.Context, flight *entity.CharterFlight) error
	FindByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.CharterFlight, error)
	FindActiveFn func(ctx context.Context) ([]*entity.CharterFlight, error)
	FindAllFn    func(ctx context.Context, limit, offset int) ([]*entity.CharterFlight, error)
	CountFn      func(ctx context.Context) (int64, error)
	UpdateFn     func(ctx context.Context, flight *entity.CharterFlight) error
	SetActiveFn  func(ctx context.Context, id uuid.UUID, active bool) error
}

func (m *mockFlightRepo) Create(ctx context.Context, flight *entity.CharterFlight) error {
	return m.CreateFn(ctx, flight)
}
func (m *mockFlightRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CharterFlight, error) {
	return m.FindByIDFn(ctx, id)
}
func (m *mockFlightRepo) FindActive(ctx context.Context) ([]*entity.CharterFlight, error) {
	return m.FindActiveFn(ctx)
}
func (m *mockFlightRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.CharterFlight, error) {
	return m.FindAllFn(ctx, limit, offset)
}
func (m *mockFlightRepo) Count(ctx context.Context) (int64, error) {
	return m.CountFn(ctx)
}
func (m *mockFlightRepo) Update(ctx context.Context, flight *entity.CharterFlight) error {
	return m.UpdateFn(ctx, flight)
}
func (m *mockFlightRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.SetActiveFn(ctx, id, active)
}

type mockBookingRepo struct {
	CreateFn            func(ctx context.Context, booking *entity.Booking) error
	FindByIDFn          func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserIDFn      func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserIDFn     func(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAllFn           func(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountFn             func(ctx context.Context) (int64, error)
	CountActiveByTourFn func(ctx context.Context, tourID uuid.UUID) (int64, error)
	UpdateStatusFn      func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.CreateFn(ctx, booking)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return m.FindByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return m.FindByUserIDFn(ctx, userID, limit, offset)
}
func (m *mockBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.CountByUserIDFn(ctx, userID)
}
func (m *mockBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	return m.FindAllFn(ctx, limit, offset)
}
func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) {
	return m.CountFn(ctx)
}
func (m *mockBookingRepo) CountActiveByTour(ctx context.Context, tourID uuid.UUID) (int64, error) {
	return m.CountActiveByTourFn(ctx, tourID)
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	return m.UpdateStatusFn(ctx, id, status)
}

type mockCharterBookingRepo struct {
	CreateFn        func(ctx context.Context, booking *entity.CharterBooking) error
	FindByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.CharterBooking, error)
	FindByUserIDFn  func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.CharterBooking, error)
	CountByUserIDFn func(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAllFn       func(ctx context.Context, limit, offset int) ([]*entity.CharterBooking, error)
	CountFn         func(ctx context.Context) (int64, error)
	SeatsTakenFn    func(ctx context.Context, flightID uuid.UUID, departureDate time.Time) (int64, error)
	UpdateStatusFn  func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

func (m *mockCharterBookingRepo) Create(ctx context.Context, booking *entity.CharterBooking) error {
	return m.CreateFn(ctx, booking)
}
func (m *mockCharterBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CharterBooking, error) {
	return m.FindByIDFn(ctx, id)
}
func (m *mockCharterBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.CharterBooking, error) {
	return m.FindByUserIDFn(ctx, userID, limit, offset)
}
func (m *mockCharterBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.CountByUserIDFn(ctx, userID)
}
func (m *mockCharterBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.CharterBooking, error) {
	return m.FindAllFn(ctx, limit, offset)
}
func (m *mockCharterBookingRepo) Count(ctx context.Context) (int64, error) {
	return m.CountFn(ctx)
}
func (m *mockCharterBookingRepo) SeatsTaken(ctx context.Context, flightID uuid.UUID, departureDate time.Time) (int64, error) {
	return m.SeatsTakenFn(ctx, flightID, departureDate)
}
func (m *mockCharterBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	return m.UpdateStatusFn(ctx, id, status)
}

type mockTransportBookingRepo struct {
	CreateFn        func(ctx context.Context, booking *entity.TransportBooking) error
	FindByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.TransportBooking, error)
	FindByUserIDFn  func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TransportBooking, error)
	CountByUserIDFn func(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAllFn       func(ctx context.Context, limit, offset int) ([]*entity.TransportBooking, error)
	CountFn         func(ctx context.Context) (int64, error)
	UpdateStatusFn  func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

func (m *mockTransportBookingRepo) Create(ctx context.Context, booking *entity.TransportBooking) error {
	return m.CreateFn(ctx, booking)
}
func (m *mockTransportBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransportBooking, error) {
	return m.FindByIDFn(ctx, id)
}
func (m *mockTransportBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.TransportBooking, error) {
	return m.FindByUserIDFn(ctx, userID, limit, offset)
}
func (m *mockTransportBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.CountByUserIDFn(ctx, userID)
}
func (m *mockTransportBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.TransportBooking, error) {
	return m.FindAllFn(ctx, limit, offset)
}
func (m *mockTransportBookingRepo) Count(ctx context.Context) (int64, error) {
	return m.CountFn(ctx)
}
func (m *mockTransportBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	return m.UpdateStatusFn(ctx, id, status)
}

type mockMessageRepo struct {
	CreateFn        func(ctx context.Context, message *entity.Message) error
	FindByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Message, error)
	FindByBookingFn func(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope) ([]*entity.Message, error)
	MarkReadFn      func(ctx context.Context, id uuid.UUID) error
	MarkAllReadFn   func(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, readerID uuid.UUID) error
	CountUnreadFn   func(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, readerID uuid.UUID) (int64, error)
}

func (m *mockMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	return m.CreateFn(ctx, message)
}
func (m *mockMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	return m.FindByIDFn(ctx, id)
}
func (m *mockMessageRepo) FindByBooking(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope) ([]*entity.Message, error) {
	return m.FindByBookingFn(ctx, bookingID, scope)
}
func (m *mockMessageRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	return m.MarkReadFn(ctx, id)
}
func (m *mockMessageRepo) MarkAllRead(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, readerID uuid.UUID) error {
	return m.MarkAllReadFn(ctx, bookingID, scope, readerID)
}
func (m *mockMessageRepo) CountUnread(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, readerID uuid.UUID) (int64, error) {
	return m.CountUnreadFn(ctx, bookingID, scope, readerID)
}

type mockUserRepo struct {
	CreateFn       func(ctx context.Context, user *entity.User) error
	FindByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFn  func(ctx context.Context, email string) (*entity.User, error)
	FindByRoleFn   func(ctx context.Context, role entity.UserRole, limit, offset int) ([]*entity.User, error)
	CountByRoleFn  func(ctx context.Context, role entity.UserRole) (int64, error)
	UpdateStatusFn func(ctx context.Context, id uuid.UUID, status entity.UserStatus) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.CreateFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.FindByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.FindByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindByRole(ctx context.Context, role entity.UserRole, limit, offset int) ([]*entity.User, error) {
	return m.FindByRoleFn(ctx, role, limit, offset)
}
func (m *mockUserRepo) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return m.CountByRoleFn(ctx, role)
}
func (m *mockUserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	return m.UpdateStatusFn(ctx, id, status)
}

type mockSessionRepo struct {
	CreateFn           func(ctx context.Context, session *entity.Session) error
	FindValidByTokenFn func(ctx context.Context, refreshToken uuid.UUID) (*entity.Session, error)
	RevokeFn           func(ctx context.Context, id uuid.UUID) error
	RevokeAllForUserFn func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.CreateFn(ctx, session)
}
func (m *mockSessionRepo) FindValidByToken(ctx context.Context, refreshToken uuid.UUID) (*entity.Session, error) {
	return m.FindValidByTokenFn(ctx, refreshToken)
}
func (m *mockSessionRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	return m.RevokeFn(ctx, id)
}
func (m *mockSessionRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return m.RevokeAllForUserFn(ctx, userID)
}

// recordingChat satisfies ChatService and records the system messages the
// booking services emit.
type recordingChat struct {
	systemTexts []string
}

func (c *recordingChat) Send(context.Context, uuid.UUID, entity.UserRole, *request.SendMessageRequest) (*response.MessageResponse, error) {
	return nil, nil
}

func (c *recordingChat) ListByBooking(context.Context, uuid.UUID, entity.UserRole, string, string) ([]response.MessageResponse, error) {
	return nil, nil
}

func (c *recordingChat) MarkRead(context.Context, uuid.UUID, entity.UserRole, *request.MarkReadRequest) error {
	return nil
}

func (c *recordingChat) MarkAllRead(context.Context, uuid.UUID, entity.UserRole, *request.MarkAllReadRequest) error {
	return nil
}

func (c *recordingChat) SendSystem(_ context.Context, _ uuid.UUID, _ entity.BookingScope, _ uuid.UUID, text string) {
	c.systemTexts = append(c.systemTexts, text)
}
