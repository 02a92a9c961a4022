package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"+34612345678", true},
		{"612345678", true},
		{"+34 612 34 56 78", true},
		{"(612) 345-678", true},
		{"", false},
		{"abc", false},
		{"+0123", false},
	}

	for _, tc := range cases {
		if got := ValidatePhone(tc.phone); got != tc.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"cliente@example.com", true},
		{" cliente@example.com ", true},
		{"cliente@example", false},
		{"@example.com", false},
		{"cliente@", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidateEmail(tc.email); got != tc.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
