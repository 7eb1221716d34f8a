package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	// timeFormat внутренний формат времени (24 часа)
	timeFormat = "15:04"

	// labelFormat формат отображения для клиента (12 часов, например "2:15 PM")
	labelFormat = "3:04 PM"
)

// TimeString represents a time of day as an "HH:MM" string (24-hour clock).
// It is the normalized slot key used for comparisons and storage; the
// 12-hour display label is always derived from it, never the other way round.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString parses an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(t.Format(timeFormat)), nil
}

// NewTimeStringFromLabel parses a 12-hour display label such as "2:15 PM".
func NewTimeStringFromLabel(s string) (TimeString, error) {
	t, err := time.Parse(labelFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time label format: %v", err)
	}
	return TimeString(t.Format(timeFormat)), nil
}

// String returns the normalized "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Label returns the 12-hour display representation, e.g. "2:15 PM".
func (t TimeString) Label() string {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return string(t)
	}
	return parsed.Format(labelFormat)
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed "HH:MM" string.
func (t TimeString) Validate() error {
	_, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// parse возвращает time.Time на нулевой дате для арифметики
func (t TimeString) parse() (time.Time, error) {
	return time.Parse(timeFormat, string(t))
}

// IsBefore returns true if t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter returns true if t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result stays within the same day; crossing midnight is an error because
// a slot never spans two calendar dates.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", t, minutes)
	}

	return TimeString(shifted.Format(timeFormat)), nil
}

// Value implements driver.Valuer so the type can be written as TEXT.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}
