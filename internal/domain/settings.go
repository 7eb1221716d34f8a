package domain

import "time"

// SiteSettings is the single persisted settings row. AcceptingBookings is the
// global availability toggle: when false the booking service refuses every
// attempt before touching the bookings table.
type SiteSettings struct {
	AcceptingBookings bool
	UpdatedAt         time.Time
}
