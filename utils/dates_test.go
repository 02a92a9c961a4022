package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 9, 23, 30, 0, 0, time.Local)
	end := time.Date(2024, 6, 10, 0, 30, 0, 0, time.Local)

	// Calendar days, not 24h periods
	if got := DaysBetween(start, end); got != 1 {
		t.Errorf("DaysBetween = %d, want 1", got)
	}
}

func TestHoursBetween(t *testing.T) {
	start := time.Date(2024, 6, 9, 9, 0, 0, 0, time.Local)
	end := time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local)

	if got := HoursBetween(start, end); got != 25 {
		t.Errorf("HoursBetween = %v, want 25", got)
	}
}

func TestParseSlotStart(t *testing.T) {
	got, err := ParseSlotStart("2024-06-10", "10:00")
	if err != nil {
		t.Fatalf("ParseSlotStart returned error: %v", err)
	}

	want := time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseSlotStart = %v, want %v", got, want)
	}
}

func TestParseSlotStartInvalid(t *testing.T) {
	cases := []struct{ date, clock string }{
		{"2024-13-01", "10:00"},
		{"2024-06-10", "25:00"},
		{"not-a-date", "10:00"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := ParseSlotStart(tc.date, tc.clock); err == nil {
			t.Errorf("ParseSlotStart(%q, %q) = nil error, want error", tc.date, tc.clock)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-02-14")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.February || got.Day() != 14 {
		t.Errorf("ParseDate = %v, want 2026-02-14", got)
	}

	if _, err := ParseDate("14/02/2026"); err == nil {
		t.Errorf("ParseDate(14/02/2026) = nil error, want error")
	}
}
