package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMetaTotal(t *testing.T) {
	labels := map[BookingStatus]string{
		BookingStatusPending:    "Ожидает подтверждения",
		BookingStatusConfirmed:  "Подтверждено",
		BookingStatusCancelled:  "Отменено",
		BookingStatusInProgress: "В процессе",
		BookingStatusCompleted:  "Завершено",
	}

	for _, status := range AllStatuses() {
		meta := status.Meta()
		assert.Equal(t, labels[status], meta.Label)
		assert.NotEmpty(t, meta.Color)
		assert.True(t, status.Valid())
	}
}

func TestStatusMetaUnknownFallback(t *testing.T) {
	meta := BookingStatus("REFUNDED").Meta()
	assert.Equal(t, "REFUNDED", meta.Label)
	assert.Equal(t, "#9CA3AF", meta.Color)
	assert.False(t, BookingStatus("REFUNDED").Valid())
}

func TestCancellable(t *testing.T) {
	assert.True(t, BookingStatusPending.Cancellable())
	assert.True(t, BookingStatusConfirmed.Cancellable())
	assert.True(t, BookingStatusInProgress.Cancellable())
	assert.False(t, BookingStatusCancelled.Cancellable())
	assert.False(t, BookingStatusCompleted.Cancellable())
}
