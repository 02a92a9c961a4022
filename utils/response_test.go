package utils

import (
	"strings"
	"testing"
)

func TestGenerateRandomStringLengthAndAlphabet(t *testing.T) {
	s := GenerateRandomString(8)
	if len(s) != 8 {
		t.Fatalf("len = %d, want 8", len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(codeAlphabet, r) {
			t.Errorf("unexpected character %q in %q", r, s)
		}
	}
}

func TestNewBookingCodeFormat(t *testing.T) {
	code := NewBookingCode()
	if !strings.HasPrefix(code, "C-ALMA-") {
		t.Errorf("booking code %q missing C-ALMA- prefix", code)
	}
	if len(code) != len("C-ALMA-")+8 {
		t.Errorf("booking code %q has wrong length", code)
	}
}

func TestNewValentineCodeFormat(t *testing.T) {
	code := NewValentineCode()
	if !strings.HasPrefix(code, "VAL26-") {
		t.Errorf("valentine code %q missing VAL26- prefix", code)
	}
	if len(code) != len("VAL26-")+7 {
		t.Errorf("valentine code %q has wrong length", code)
	}
}

func TestCodesAreUnpredictable(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := NewBookingCode()
		if seen[code] {
			t.Fatalf("duplicate booking code %q after %d draws", code, i)
		}
		seen[code] = true
	}
}
