package client

import (
	"testing"
	"time"

	"travel-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msgAt(id string, at time.Time) response.MessageResponse {
	return response.MessageResponse{ID: id, CreatedAt: at}
}

func TestGroupedByDate(t *testing.T) {
	day1 := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)

	groups := GroupedByDate([]response.MessageResponse{
		msgAt("1", day1),
		msgAt("2", day1.Add(2 * time.Hour)),
		msgAt("3", day2),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "2025-06-02", groups[0].Date)
	require.Len(t, groups[0].Messages, 2)
	assert.Equal(t, "1", groups[0].Messages[0].ID)
	assert.Equal(t, "2", groups[0].Messages[1].ID)

	assert.Equal(t, "2025-06-03", groups[1].Date)
	assert.Equal(t, "3", groups[1].Messages[0].ID)
}

func TestGroupedByDateEmpty(t *testing.T) {
	assert.Empty(t, GroupedByDate(nil))
}

func TestGroupedByDateOrdersDays(t *testing.T) {
	// Input arrives newest-day first; groups come out chronological.
	groups := GroupedByDate([]response.MessageResponse{
		msgAt("new", time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)),
		msgAt("old", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, "2025-06-01", groups[0].Date)
	assert.Equal(t, "2025-06-10", groups[1].Date)
}
