package domain

import "time"

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// DateOf truncates t to its UTC calendar date (midnight UTC).
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// IsAfterDay reports whether date falls on a calendar day strictly after the
// UTC calendar day of now. Time of day is ignored on both sides.
func IsAfterDay(date, now time.Time) bool {
	return DateOf(date).After(DateOf(now))
}

// MonthWindow returns the first and last calendar days of asOf's UTC month.
func MonthWindow(asOf time.Time) (first, last time.Time) {
	u := asOf.UTC()
	first = time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}
