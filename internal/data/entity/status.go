package entity

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
)

// StatusMeta is the display mapping shared by every portal view.
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// statusMeta must stay total: every status constant has an entry.
var statusMeta = map[BookingStatus]StatusMeta{
	BookingStatusPending:    {Label: "Ожидает подтверждения", Color: "#F59E0B"},
	BookingStatusConfirmed:  {Label: "Подтверждено", Color: "#10B981"},
	BookingStatusCancelled:  {Label: "Отменено", Color: "#EF4444"},
	BookingStatusInProgress: {Label: "В процессе", Color: "#3B82F6"},
	BookingStatusCompleted:  {Label: "Завершено", Color: "#6B7280"},
}

// Meta returns the display label and color for a status. Unknown values fall
// back to a neutral entry so a view never renders an empty badge.
func (s BookingStatus) Meta() StatusMeta {
	if meta, ok := statusMeta[s]; ok {
		return meta
	}
	return StatusMeta{Label: string(s), Color: "#9CA3AF"}
}

// Valid reports whether s is one of the known status constants.
func (s BookingStatus) Valid() bool {
	_, ok := statusMeta[s]
	return ok
}

// Cancellable reports whether a client may still cancel a booking in this
// status. CANCELLED and COMPLETED are terminal for the client flow.
func (s BookingStatus) Cancellable() bool {
	return s != BookingStatusCancelled && s != BookingStatusCompleted
}

// AllStatuses lists every known status in lifecycle order.
func AllStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
}
