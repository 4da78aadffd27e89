package usecase

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chatRepoFixture(bookingID, ownerID uuid.UUID, messages []*entity.Message) *repository.Repository {
	return &repository.Repository{
		Booking: &mockBookingRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return testBooking(bookingID, ownerID, entity.BookingStatusPending), nil
			},
		},
		Message: &mockMessageRepo{
			FindByBookingFn: func(ctx context.Context, id uuid.UUID, scope entity.BookingScope) ([]*entity.Message, error) {
				return messages, nil
			},
		},
		User: &mockUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return &entity.User{Base: entity.Base{ID: id}, Name: "Анна"}, nil
			},
		},
	}
}

func chatMessage(bookingID, authorID uuid.UUID, isRead bool) *entity.Message {
	return &entity.Message{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		BookingID:  bookingID,
		Scope:      entity.ScopeTours,
		AuthorID:   authorID,
		Text:       "Здравствуйте!",
		Type:       entity.MessageTypeText,
		IsRead:     isRead,
	}
}

func TestListByBookingReadByMe(t *testing.T) {
	bookingID := uuid.New()
	owner := uuid.New()
	manager := uuid.New()

	messages := []*entity.Message{
		chatMessage(bookingID, owner, false),   // own unread message
		chatMessage(bookingID, manager, false), // counterpart, unread
		chatMessage(bookingID, manager, true),  // counterpart, read
	}

	repo := chatRepoFixture(bookingID, owner, messages)
	svc := NewChatService(repo, zap.NewNop())

	items, err := svc.ListByBooking(context.Background(), owner, entity.RoleClient, bookingID.String(), "TOURS")
	require.NoError(t, err)
	require.Len(t, items, 3)

	// A viewer has always read their own messages.
	assert.True(t, items[0].ReadByMe)
	assert.False(t, items[1].ReadByMe)
	assert.True(t, items[2].ReadByMe)
}

func TestListByBookingRejectsStranger(t *testing.T) {
	bookingID := uuid.New()
	owner := uuid.New()

	repo := chatRepoFixture(bookingID, owner, nil)
	svc := NewChatService(repo, zap.NewNop())

	_, err := svc.ListByBooking(context.Background(), uuid.New(), entity.RoleClient, bookingID.String(), "TOURS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestListByBookingAllowsManager(t *testing.T) {
	bookingID := uuid.New()
	owner := uuid.New()

	repo := chatRepoFixture(bookingID, owner, nil)
	svc := NewChatService(repo, zap.NewNop())

	_, err := svc.ListByBooking(context.Background(), uuid.New(), entity.RoleManager, bookingID.String(), "TOURS")
	require.NoError(t, err)
}

func TestMarkReadOwnMessageIsNoop(t *testing.T) {
	bookingID := uuid.New()
	owner := uuid.New()
	msg := chatMessage(bookingID, owner, false)

	markCalled := false
	repo := chatRepoFixture(bookingID, owner, nil)
	repo.Message = &mockMessageRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
			return msg, nil
		},
		MarkReadFn: func(ctx context.Context, id uuid.UUID) error {
			markCalled = true
			return nil
		},
	}

	svc := NewChatService(repo, zap.NewNop())
	err := svc.MarkRead(context.Background(), owner, entity.RoleClient, &request.MarkReadRequest{
		MessageID: msg.ID.String(),
	})
	require.NoError(t, err)
	assert.False(t, markCalled)
}
