package usecase

import (
	"fmt"
	"time"

	"travel-booking/internal/resolver"
)

// parseDateOnly parses a date-only string to UTC midnight, the canonical
// representation for every validity window and departure date.
func parseDateOnly(value string) (time.Time, error) {
	t, err := time.ParseInLocation(resolver.DateOnly, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	dateFrom, err := parseDateOnly(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	dateTo, err := parseDateOnly(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if dateTo.Before(dateFrom) {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date range: date_to before date_from")
	}
	return dateFrom, dateTo, nil
}
