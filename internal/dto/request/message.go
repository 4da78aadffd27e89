package request

type SendMessageRequest struct {
	BookingID     string  `json:"booking_id" validate:"required,uuid4"`
	Scope         string  `json:"scope" validate:"required,oneof=TOURS CHARTER GROUP_TRANSPORT"`
	Text          string  `json:"text" validate:"required_without=AttachmentURL,max=5000"`
	Type          string  `json:"type" validate:"required,oneof=TEXT IMAGE FILE"`
	AttachmentURL *string `json:"attachment_url,omitempty" validate:"omitempty,url"`
}

type MarkReadRequest struct {
	MessageID string `json:"message_id" validate:"required,uuid4"`
}

type MarkAllReadRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
	Scope     string `json:"scope" validate:"required,oneof=TOURS CHARTER GROUP_TRANSPORT"`
}
