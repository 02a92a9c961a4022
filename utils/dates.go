// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

func HoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// ParseSlotStart combines a slot's "2006-01-02" date and "15:04" time
// into a single timestamp. The studio runs on local server time.
func ParseSlotStart(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", fmt.Sprintf("%s %s", date, clock), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}

// ParseDate parses a bare "2006-01-02" date, the format slot dates and
// delivery schedules arrive in.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}
