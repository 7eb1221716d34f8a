// Package localdate converts absolute instants to business-local calendar
// dates. Bookings are stored as UTC instants; grouping them by date must go
// through an explicit timezone conversion, otherwise two instants that are
// calendar-adjacent in UTC but the same local day end up under different keys
// (the classic off-by-one-day bug near midnight).
package localdate

import "time"

// KeyFormat формат ключа локальной даты (YYYY-MM-DD)
const KeyFormat = "2006-01-02"

// Key returns the calendar date of the instant t as observed in loc,
// formatted as "YYYY-MM-DD".
func Key(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(KeyFormat)
}

// DateOf returns midnight of the instant's calendar date in loc.
func DateOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether two instants fall on the same calendar date in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// IsPastDate reports whether the instant's calendar date in loc is strictly
// before the current date (time of day is irrelevant for the comparison).
func IsPastDate(date, now time.Time, loc *time.Location) bool {
	return DateOf(date, loc).Before(DateOf(now, loc))
}
