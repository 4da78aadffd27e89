package entity

import "time"

type Tour struct {
	Base
	Title       string    `db:"title"`
	Destination string    `db:"destination"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	DateFrom    time.Time `db:"date_from"`
	DateTo      time.Time `db:"date_to"`
	SeatsTotal  int       `db:"seats_total"`
	IsActive    bool      `db:"is_active"`
}
