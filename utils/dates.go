package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CivilDate drops the time of day and location of t, keeping its calendar
// date as seen in t's own location, and returns it at UTC midnight.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC civil date.
func ParseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return t, nil
}

// MustParseDate is ParseDate for fixtures; it panics on malformed input.
func MustParseDate(raw string) time.Time {
	t, err := ParseDate(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return CivilDate(t).Format(DateLayout)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of calendar days from start to end. It is
// negative when end precedes start. Unix seconds are used because
// time.Duration saturates after roughly 292 years.
func DaysBetween(start, end time.Time) int {
	return int((CivilDate(end).Unix() - CivilDate(start).Unix()) / secondsPerDay)
}

// AddDays shifts a civil date by n days.
func AddDays(t time.Time, n int) time.Time {
	return CivilDate(t).AddDate(0, 0, n)
}
