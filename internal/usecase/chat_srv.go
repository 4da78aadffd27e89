package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatService interface {
	Send(ctx context.Context, authorID uuid.UUID, role entity.UserRole, req *request.SendMessageRequest) (*response.MessageResponse, error)
	// ListByBooking returns the thread with the viewer-specific read flags.
	ListByBooking(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, bookingID, scope string) ([]response.MessageResponse, error)
	MarkRead(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, req *request.MarkReadRequest) error
	MarkAllRead(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, req *request.MarkAllReadRequest) error

	// SendSystem posts a SYSTEM message into a thread; used by booking
	// services on status changes. Failures are logged, not propagated.
	SendSystem(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, authorID uuid.UUID, text string)
}

type chatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewChatService(repo *repository.Repository, log *zap.Logger) ChatService {
	return &chatService{
		repo: repo,
		log:  log.With(zap.String("service", "chat")),
	}
}

// bookingOwner resolves the owning user of a booking in any scope.
func (s *chatService) bookingOwner(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope) (uuid.UUID, error) {
	switch scope {
	case entity.ScopeTours:
		booking, err := s.repo.Booking.FindByID(ctx, bookingID)
		if err != nil {
			return uuid.Nil, err
		}
		if booking == nil {
			return uuid.Nil, fmt.Errorf("booking %s not found", bookingID.String())
		}
		return booking.UserID, nil
	case entity.ScopeCharter:
		booking, err := s.repo.CharterBooking.FindByID(ctx, bookingID)
		if err != nil {
			return uuid.Nil, err
		}
		if booking == nil {
			return uuid.Nil, fmt.Errorf("booking %s not found", bookingID.String())
		}
		return booking.UserID, nil
	case entity.ScopeGroupTransport:
		booking, err := s.repo.TransportBooking.FindByID(ctx, bookingID)
		if err != nil {
			return uuid.Nil, err
		}
		if booking == nil {
			return uuid.Nil, fmt.Errorf("booking %s not found", bookingID.String())
		}
		return booking.UserID, nil
	default:
		return uuid.Nil, fmt.Errorf("invalid scope %s", scope)
	}
}

// authorize allows the booking owner and any manager/admin into the thread.
func (s *chatService) authorize(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, bookingID uuid.UUID, scope entity.BookingScope) error {
	if role.CanManage() {
		return nil
	}

	owner, err := s.bookingOwner(ctx, bookingID, scope)
	if err != nil {
		return err
	}
	if owner != viewerID {
		return fmt.Errorf("unauthorized: not a participant of this chat")
	}
	return nil
}

func (s *chatService) Send(ctx context.Context, authorID uuid.UUID, role entity.UserRole, req *request.SendMessageRequest) (*response.MessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}
	scope := entity.BookingScope(req.Scope)

	if err := s.authorize(ctx, authorID, role, bookingID, scope); err != nil {
		return nil, err
	}

	msg := &entity.Message{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:     bookingID,
		Scope:         scope,
		AuthorID:      authorID,
		Text:          req.Text,
		Type:          entity.MessageType(req.Type),
		AttachmentURL: req.AttachmentURL,
	}

	if err := s.repo.Message.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	s.log.Info("Message sent",
		zap.String("message_id", msg.ID.String()),
		zap.String("booking_id", bookingID.String()),
		zap.String("scope", string(scope)))

	author, _ := s.repo.User.FindByID(ctx, authorID)
	authorName := ""
	if author != nil {
		authorName = author.Name
	}

	resp := response.MessageToResponse(msg, authorName, authorID)
	return &resp, nil
}

func (s *chatService) ListByBooking(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, bookingID, scope string) ([]response.MessageResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	bookingScope := entity.BookingScope(scope)
	if !bookingScope.Valid() {
		return nil, fmt.Errorf("invalid scope %s", scope)
	}

	if err := s.authorize(ctx, viewerID, role, id, bookingScope); err != nil {
		return nil, err
	}

	messages, err := s.repo.Message.FindByBooking(ctx, id, bookingScope)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	// Author names are resolved once per distinct author.
	names := make(map[uuid.UUID]string)
	items := make([]response.MessageResponse, len(messages))
	for i, msg := range messages {
		name, ok := names[msg.AuthorID]
		if !ok {
			author, _ := s.repo.User.FindByID(ctx, msg.AuthorID)
			if author != nil {
				name = author.Name
			}
			names[msg.AuthorID] = name
		}
		items[i] = response.MessageToResponse(msg, name, viewerID)
	}

	return items, nil
}

func (s *chatService) MarkRead(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, req *request.MarkReadRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.MessageID)
	if err != nil {
		return fmt.Errorf("invalid message ID format %s: %w", req.MessageID, err)
	}

	msg, err := s.repo.Message.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}
	if msg == nil {
		return fmt.Errorf("message %s not found", req.MessageID)
	}

	if err := s.authorize(ctx, viewerID, role, msg.BookingID, msg.Scope); err != nil {
		return err
	}
	if msg.AuthorID == viewerID {
		// Own messages carry no receipt.
		return nil
	}

	return s.repo.Message.MarkRead(ctx, id)
}

func (s *chatService) MarkAllRead(ctx context.Context, viewerID uuid.UUID, role entity.UserRole, req *request.MarkAllReadRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}
	scope := entity.BookingScope(req.Scope)

	if err := s.authorize(ctx, viewerID, role, bookingID, scope); err != nil {
		return err
	}

	return s.repo.Message.MarkAllRead(ctx, bookingID, scope, viewerID)
}

func (s *chatService) SendSystem(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, authorID uuid.UUID, text string) {
	msg := &entity.Message{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID: bookingID,
		Scope:     scope,
		AuthorID:  authorID,
		Text:      text,
		Type:      entity.MessageTypeSystem,
	}

	if err := s.repo.Message.Create(ctx, msg); err != nil {
		s.log.Warn("Failed to post system message",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()))
	}
}
