package entity

import "time"

// CharterFlight is a recurring route template: it is bookable for any
// departure date inside [DateFrom, DateTo] whose ISO weekday is listed in
// WeekDays (1=Mon .. 7=Sun, unique values).
type CharterFlight struct {
	Base
	From        string    `db:"from_city"`
	To          string    `db:"to_city"`
	DateFrom    time.Time `db:"date_from"`
	DateTo      time.Time `db:"date_to"`
	WeekDays    []int     `db:"week_days"`
	SeatsTotal  int       `db:"seats_total"`
	Categories  []string  `db:"categories"`
	HasBusiness bool      `db:"has_business"`
	HasComfort  bool      `db:"has_comfort"`
	IsActive    bool      `db:"is_active"`
}

// FlightDay reports whether the flight departs on the given ISO weekday.
func (f *CharterFlight) FlightDay(isoWeekday int) bool {
	for _, d := range f.WeekDays {
		if d == isoWeekday {
			return true
		}
	}
	return false
}
