package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a civil calendar date in ISO-8601 YYYY-MM-DD form. It carries
// no time zone or time-of-day component.
type Date string

// ParseDate validates s and returns it as a Date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// DateOf converts a time.Time to its local calendar date.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d Date) String() string { return string(d) }

// Time returns the date as a UTC midnight time.Time.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// Year returns the calendar year, or 0 for a malformed date.
func (d Date) Year() int {
	t, err := d.Time()
	if err != nil {
		return 0
	}
	return t.Year()
}

// InMonth reports whether the date falls in the given year and month.
// Comparison is on the string prefix, so malformed dates never match.
func (d Date) InMonth(year int, month time.Month) bool {
	prefix := fmt.Sprintf("%04d-%02d", year, int(month))
	return len(d) >= len(prefix) && string(d[:len(prefix)]) == prefix
}
