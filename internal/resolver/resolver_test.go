package resolver

import (
	"testing"
	"time"

	"travel-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation(DateOnly, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func moscowAntalya() *entity.CharterFlight {
	return &entity.CharterFlight{
		From:       "Москва",
		To:         "Анталья",
		DateFrom:   date("2025-06-01"),
		DateTo:     date("2025-06-30"),
		WeekDays:   []int{1, 3, 5},
		SeatsTotal: 180,
		IsActive:   true,
	}
}

func TestISOWeekday(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2025-06-02", 1}, // Monday
		{"2025-06-03", 2},
		{"2025-06-06", 5}, // Friday
		{"2025-06-08", 7}, // Sunday
		{"2024-02-29", 4}, // leap day
	}

	for _, tc := range cases {
		got, err := ISOWeekday(tc.date)
		assert.NoError(t, err, tc.date)
		assert.Equal(t, tc.want, got, tc.date)
		assert.GreaterOrEqual(t, got, 1)
		assert.LessOrEqual(t, got, 7)
	}
}

func TestISOWeekday_RejectsMalformedDate(t *testing.T) {
	_, err := ISOWeekday("02.06.2025")
	assert.Error(t, err)
}

func TestResolve_MatchesWindowAndWeekdays(t *testing.T) {
	flights := []*entity.CharterFlight{moscowAntalya()}

	req := Request{From: "Москва", To: "Анталья", DateFrom: "2025-06-02", DateTo: "2025-06-20"}

	flight, err := Resolve(flights, req)
	assert.NoError(t, err)
	assert.NotNil(t, flight)
	assert.Equal(t, "Анталья", flight.To)
}

func TestResolve_WeekdayOutsidePattern(t *testing.T) {
	flights := []*entity.CharterFlight{moscowAntalya()}

	// Tuesday departure, flight only runs Mon/Wed/Fri.
	req := Request{From: "Москва", To: "Анталья", DateFrom: "2025-06-03", DateTo: "2025-06-20"}

	flight, err := Resolve(flights, req)
	assert.Nil(t, flight)

	var noMatch *NoMatchError
	assert.ErrorAs(t, err, &noMatch)
	assert.Equal(t, ReasonDatesNotSupported, noMatch.Reason)
}

func TestResolve_UnknownRoute(t *testing.T) {
	flights := []*entity.CharterFlight{moscowAntalya()}

	req := Request{From: "Москва", To: "Дубай", DateFrom: "2025-06-02", DateTo: "2025-06-20"}

	flight, err := Resolve(flights, req)
	assert.Nil(t, flight)

	var noMatch *NoMatchError
	assert.ErrorAs(t, err, &noMatch)
	assert.Equal(t, ReasonNoRouteMatch, noMatch.Reason)
}

func TestResolve_DatesOutsideWindow(t *testing.T) {
	flights := []*entity.CharterFlight{moscowAntalya()}

	// Both dates are Mondays, but July is past the validity window.
	req := Request{From: "Москва", To: "Анталья", DateFrom: "2025-07-07", DateTo: "2025-07-14"}

	flight, err := Resolve(flights, req)
	assert.Nil(t, flight)

	var noMatch *NoMatchError
	assert.ErrorAs(t, err, &noMatch)
	assert.Equal(t, ReasonDatesNotSupported, noMatch.Reason)
}

func TestResolve_InactiveFlightDoesNotServeRoute(t *testing.T) {
	archived := moscowAntalya()
	archived.IsActive = false
	flights := []*entity.CharterFlight{archived}

	req := Request{From: "Москва", To: "Анталья", DateFrom: "2025-06-02", DateTo: "2025-06-20"}

	_, err := Resolve(flights, req)
	var noMatch *NoMatchError
	assert.ErrorAs(t, err, &noMatch)
	assert.Equal(t, ReasonNoRouteMatch, noMatch.Reason)
}

func TestResolve_FirstMatchWinsInListOrder(t *testing.T) {
	first := moscowAntalya()
	second := moscowAntalya()
	second.SeatsTotal = 999

	flight, err := Resolve(
		[]*entity.CharterFlight{first, second},
		Request{From: "Москва", To: "Анталья", DateFrom: "2025-06-02", DateTo: "2025-06-20"},
	)
	assert.NoError(t, err)
	assert.Same(t, first, flight)
}

func TestResolve_Idempotent(t *testing.T) {
	flights := []*entity.CharterFlight{moscowAntalya()}
	req := Request{From: "Москва", To: "Анталья", DateFrom: "2025-06-02", DateTo: "2025-06-20"}

	a, errA := Resolve(flights, req)
	b, errB := Resolve(flights, req)

	assert.NoError(t, errA)
	assert.NoError(t, errB)
	assert.Same(t, a, b)
}

func TestResolve_ReturnBeforeDeparture(t *testing.T) {
	flights := []*entity.CharterFlight{moscowAntalya()}
	req := Request{From: "Москва", To: "Анталья", DateFrom: "2025-06-20", DateTo: "2025-06-02"}

	_, err := Resolve(flights, req)
	var noMatch *NoMatchError
	assert.ErrorAs(t, err, &noMatch)
	assert.Equal(t, ReasonDatesNotSupported, noMatch.Reason)
}
