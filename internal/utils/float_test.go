package utils

import (
	"testing"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		// Plain numbers
		{"integer", "42", 42, true},
		{"decimal", "0.85", 0.85, true},
		{"negative", "-3.5", -3.5, true},
		{"padded", "  12 ", 12, true},

		// Percent sign is stripped, not rescaled
		{"percent", "85%", 85, true},
		{"spaced percent", "85 %", 85, true},
		{"decimal comma", "85,5", 85.5, true},

		// Missing markers
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"div zero", "#DIV/0!", 0, false},
		{"na", "NA", 0, false},
		{"n/a lower", "n/a", 0, false},
		{"nan", "NaN", 0, false},
		{"dash", "-", 0, false},

		// Text
		{"text", "pendiente", 0, false},
		{"inf", "Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCell(tt.input)
			if (got != nil) != tt.ok {
				t.Fatalf("ParseCell(%q) present = %v, want %v", tt.input, got != nil, tt.ok)
			}
			if tt.ok && *got != tt.expected {
				t.Errorf("ParseCell(%q) = %v, want %v", tt.input, *got, tt.expected)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	if f, ok := ParseNumber("3.25"); !ok || f != 3.25 {
		t.Errorf("ParseNumber(3.25) = %v, %v", f, ok)
	}
	if _, ok := ParseNumber("85%"); ok {
		t.Error("ParseNumber should reject percent strings")
	}
	if _, ok := ParseNumber("NaN"); ok {
		t.Error("ParseNumber should reject NaN")
	}
}

func TestIsMissing(t *testing.T) {
	for _, s := range []string{"", " ", "#DIV/0!", "#div/0", "NA", "N/A"} {
		if !IsMissing(s) {
			t.Errorf("IsMissing(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"0", "NAV", "12%"} {
		if IsMissing(s) {
			t.Errorf("IsMissing(%q) = true, want false", s)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		3:    "3",
		12.0: "12",
		2.5:  "2.5",
		-7:   "-7",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
