package entity

import (
	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeText         MessageType = "TEXT"
	MessageTypeImage        MessageType = "IMAGE"
	MessageTypeFile         MessageType = "FILE"
	MessageTypeSystem       MessageType = "SYSTEM"
	MessageTypeNotification MessageType = "NOTIFICATION"
)

// BookingScope selects which booking subsystem a message belongs to.
type BookingScope string

const (
	ScopeTours          BookingScope = "TOURS"
	ScopeCharter        BookingScope = "CHARTER"
	ScopeGroupTransport BookingScope = "GROUP_TRANSPORT"
)

func (s BookingScope) Valid() bool {
	return s == ScopeTours || s == ScopeCharter || s == ScopeGroupTransport
}

// Message belongs to exactly one booking, identified by BookingID+Scope.
// IsRead is the global flag toggled by the counterpart's read receipt; the
// viewer-specific readByMe projection is derived in the chat service.
type Message struct {
	BaseSimple
	BookingID     uuid.UUID   `db:"booking_id"`
	Scope         BookingScope `db:"scope"`
	AuthorID      uuid.UUID   `db:"author_id"`
	Text          string      `db:"text"`
	Type          MessageType `db:"type"`
	AttachmentURL *string     `db:"attachment_url"`
	IsRead        bool        `db:"is_read"`
}
