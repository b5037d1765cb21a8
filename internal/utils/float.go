package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseCell converts a spreadsheet cell to an optional number.
// Missing markers and empty cells give nil; a trailing or embedded "%" is
// dropped without rescaling ("85%" is 85).
func ParseCell(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if IsMissing(s) {
		return nil
	}

	s = strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	s = strings.ReplaceAll(s, ",", ".")
	f, ok := ParseNumber(s)
	if !ok {
		return nil
	}
	return &f
}

// ParseNumber parses a plain finite number, rejecting anything else.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsMissing reports whether a cell holds no measurement
func IsMissing(raw string) bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return true
	}
	for _, m := range MissingMarkers {
		if strings.EqualFold(s, m) {
			return true
		}
	}
	return false
}

// FormatNumber renders an identifier-like number without a trailing ".0"
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
