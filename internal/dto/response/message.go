package response

import (
	"time"

	"travel-booking/internal/data/entity"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID            string              `json:"id" validate:"required,uuid4"`
	BookingID     string              `json:"booking_id" validate:"required,uuid4"`
	Scope         entity.BookingScope `json:"scope" validate:"required,oneof=TOURS CHARTER GROUP_TRANSPORT"`
	AuthorID      string              `json:"author_id" validate:"required,uuid4"`
	AuthorName    string              `json:"author_name,omitempty"`
	Text          string              `json:"text"`
	Type          entity.MessageType  `json:"type" validate:"required,oneof=TEXT IMAGE FILE SYSTEM NOTIFICATION"`
	AttachmentURL *string             `json:"attachment_url,omitempty"`
	IsRead        bool                `json:"is_read"`
	ReadByMe      bool                `json:"read_by_me"`
	CreatedAt     time.Time           `json:"created_at"`
}

// MessageToResponse derives the viewer-specific ReadByMe: a viewer has
// always read their own messages, everything else follows the global flag.
func MessageToResponse(m *entity.Message, authorName string, viewerID uuid.UUID) MessageResponse {
	return MessageResponse{
		ID:            m.ID.String(),
		BookingID:     m.BookingID.String(),
		Scope:         m.Scope,
		AuthorID:      m.AuthorID.String(),
		AuthorName:    authorName,
		Text:          m.Text,
		Type:          m.Type,
		AttachmentURL: m.AttachmentURL,
		IsRead:        m.IsRead,
		ReadByMe:      m.AuthorID == viewerID || m.IsRead,
		CreatedAt:     m.CreatedAt,
	}
}
