package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)
	// FindByBooking returns the full thread in chronological order.
	FindByBooking(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope) ([]*entity.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	// MarkAllRead flags every message in the thread not authored by the
	// reader.
	MarkAllRead(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, readerID uuid.UUID) error
	CountUnread(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, readerID uuid.UUID) (int64, error)
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

const messageColumns = `id, booking_id, scope, author_id, text, type, attachment_url, is_read, created_at`

func scanMessage(row pgx.Row) (*entity.Message, error) {
	var msg entity.Message
	err := row.Scan(
		&msg.ID,
		&msg.BookingID,
		&msg.Scope,
		&msg.AuthorID,
		&msg.Text,
		&msg.Type,
		&msg.AttachmentURL,
		&msg.IsRead,
		&msg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (` + messageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.BookingID,
		message.Scope,
		message.AuthorID,
		message.Text,
		message.Type,
		message.AttachmentURL,
		message.IsRead,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("booking_id", message.BookingID.String()),
			zap.String("scope", string(message.Scope)),
		)
		return fmt.Errorf("create message for booking %s: %w", message.BookingID.String(), err)
	}

	return nil
}

func (r *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	msg, err := scanMessage(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find message by ID",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return nil, fmt.Errorf("find message by ID %s: %w", id.String(), err)
	}

	return msg, nil
}

func (r *messageRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope) ([]*entity.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE booking_id = $1 AND scope = $2
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, bookingID, scope)
	if err != nil {
		r.log.Error("Failed to find messages by booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("scope", string(scope)),
		)
		return nil, fmt.Errorf("find messages for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

func (r *messageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE messages SET is_read = true WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark message read",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return fmt.Errorf("mark message %s read: %w", id.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("message %s not found", id.String())
	}

	return nil
}

func (r *messageRepository) MarkAllRead(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, readerID uuid.UUID) error {
	query := `
		UPDATE messages
		SET is_read = true
		WHERE booking_id = $1 AND scope = $2 AND author_id != $3 AND is_read = false
	`

	_, err := r.db.Exec(ctx, query, bookingID, scope, readerID)
	if err != nil {
		r.log.Error("Failed to mark thread read",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("scope", string(scope)),
		)
		return fmt.Errorf("mark thread %s read: %w", bookingID.String(), err)
	}

	return nil
}

func (r *messageRepository) CountUnread(ctx context.Context, bookingID uuid.UUID, scope entity.BookingScope, readerID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE booking_id = $1 AND scope = $2 AND author_id != $3 AND is_read = false
	`

	var total int64
	err := r.db.QueryRow(ctx, query, bookingID, scope, readerID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count unread for booking %s: %w", bookingID.String(), err)
	}
	return total, nil
}
