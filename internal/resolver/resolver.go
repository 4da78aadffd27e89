// Package resolver matches a requested route and date range against the
// published recurring charter flights. It is pure: no clock, no storage.
package resolver

import (
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
)

// DateOnly is the wire format for request dates.
const DateOnly = "2006-01-02"

type Reason string

const (
	// ReasonNoRouteMatch: no active flight serves the city pair at all.
	ReasonNoRouteMatch Reason = "no_route_match"
	// ReasonDatesNotSupported: the route exists but the requested dates fall
	// outside every matching flight's window or weekday pattern.
	ReasonDatesNotSupported Reason = "dates_not_supported"
)

// NoMatchError reports why no flight satisfied the request.
type NoMatchError struct {
	Reason Reason
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matching flight: %s", e.Reason)
}

// Request is the client's desired route and travel window, date-only strings.
type Request struct {
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	DateFrom string `json:"dateFrom" validate:"required,datetime=2006-01-02"`
	DateTo   string `json:"dateTo" validate:"required,datetime=2006-01-02"`
}

// ISOWeekday returns the ISO weekday (1=Mon .. 7=Sun) of a date-only string.
// The computation uses UTC calendar fields only, so the result does not
// depend on the process timezone.
func ISOWeekday(dateOnly string) (int, error) {
	t, err := time.ParseInLocation(DateOnly, dateOnly, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", dateOnly, err)
	}
	wd := int(t.UTC().Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd, nil
}

// Resolve picks the flight to book against: the first active flight, in list
// order, whose route matches exactly (case-sensitive, cities are pre-resolved
// upstream) and whose validity window and weekday pattern cover both the
// departure and return dates. List order is the only tie-break when several
// flights qualify.
func Resolve(flights []*entity.CharterFlight, req Request) (*entity.CharterFlight, error) {
	depDate, err := time.ParseInLocation(DateOnly, req.DateFrom, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse dateFrom %q: %w", req.DateFrom, err)
	}
	retDate, err := time.ParseInLocation(DateOnly, req.DateTo, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse dateTo %q: %w", req.DateTo, err)
	}
	if retDate.Before(depDate) {
		return nil, &NoMatchError{Reason: ReasonDatesNotSupported}
	}

	depDay, err := ISOWeekday(req.DateFrom)
	if err != nil {
		return nil, err
	}
	retDay, err := ISOWeekday(req.DateTo)
	if err != nil {
		return nil, err
	}

	routeExists := false
	for _, f := range flights {
		if f == nil || !f.IsActive {
			continue
		}
		if f.From != req.From || f.To != req.To {
			continue
		}
		routeExists = true

		if depDate.Before(f.DateFrom) || retDate.After(f.DateTo) {
			continue
		}
		if !f.FlightDay(depDay) || !f.FlightDay(retDay) {
			continue
		}
		return f, nil
	}

	if routeExists {
		return nil, &NoMatchError{Reason: ReasonDatesNotSupported}
	}
	return nil, &NoMatchError{Reason: ReasonNoRouteMatch}
}
