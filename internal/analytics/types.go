// Package analytics provides the types shared by the indicator classifiers:
// the fixed reporting calendar, ordered observation series and the named
// thresholds every classifier reads.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Calendar is the canonical month order. Every classifier that needs
// chronology resolves labels against it.
var Calendar = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// spanishCalendar holds the month headers used by the source workbooks.
var spanishCalendar = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var monthIndex = make(map[string]int, 24)

func init() {
	for i := range Calendar {
		monthIndex[strings.ToLower(Calendar[i])] = i
		monthIndex[strings.ToLower(spanishCalendar[i])] = i
	}
	// Common spelling in older boards
	monthIndex["setiembre"] = 8
}

// MonthIndex returns the 0-based calendar position of a month label.
// Labels are matched case-insensitively, in English or Spanish.
func MonthIndex(label string) (int, bool) {
	idx, ok := monthIndex[strings.ToLower(strings.TrimSpace(label))]
	return idx, ok
}

// Float returns a pointer to v, for building optional values.
func Float(v float64) *float64 {
	return &v
}

// IsPresent reports whether an optional value carries a usable number.
func IsPresent(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}

// Observation is a single period measurement. A nil or NaN Value means the
// period was not measured.
type Observation struct {
	Period string   `json:"period" yaml:"period"`
	Value  *float64 `json:"value" yaml:"value"`
}

// Present reports whether the observation carries a value
func (o Observation) Present() bool {
	return IsPresent(o.Value)
}

// Series is an ordered list of observations. The order is the order in which
// the source produced the periods and is preserved by every operation that
// does not explicitly sort.
type Series []Observation

// Len returns the number of observations, present or not
func (s Series) Len() int {
	return len(s)
}

// Present returns the observations that carry a value, in series order.
func (s Series) Present() []Observation {
	out := make([]Observation, 0, len(s))
	for _, o := range s {
		if o.Present() {
			out = append(out, o)
		}
	}
	return out
}

// Values returns the present values in series order.
func (s Series) Values() []float64 {
	values := make([]float64, 0, len(s))
	for _, o := range s {
		if o.Present() {
			values = append(values, *o.Value)
		}
	}
	return values
}

// IsCalendar reports whether the series is keyed by calendar months.
// A single month label is enough to switch the series to calendar mode.
func (s Series) IsCalendar() bool {
	for _, o := range s {
		if _, ok := MonthIndex(o.Period); ok {
			return true
		}
	}
	return false
}

// byMonth maps calendar positions to the first present value found for them.
func (s Series) byMonth() map[int]float64 {
	months := make(map[int]float64, 12)
	for _, o := range s {
		if !o.Present() {
			continue
		}
		idx, ok := MonthIndex(o.Period)
		if !ok {
			continue
		}
		if _, seen := months[idx]; !seen {
			months[idx] = *o.Value
		}
	}
	return months
}

// Positions returns the sorted calendar positions that carry a value.
// Non-calendar labels are ignored.
func (s Series) Positions() []int {
	months := s.byMonth()
	positions := make([]int, 0, len(months))
	for i := range Calendar {
		if _, ok := months[i]; ok {
			positions = append(positions, i)
		}
	}
	return positions
}

// Chronological returns the present calendar values in month order. Months
// without data are skipped, not interpolated.
func (s Series) Chronological() []float64 {
	months := s.byMonth()
	values := make([]float64, 0, len(months))
	for i := range Calendar {
		if v, ok := months[i]; ok {
			values = append(values, v)
		}
	}
	return values
}

// Latest walks the calendar from December back to January and returns the
// first present value.
func (s Series) Latest() (float64, bool) {
	months := s.byMonth()
	for i := len(Calendar) - 1; i >= 0; i-- {
		if v, ok := months[i]; ok {
			return v, true
		}
	}
	return 0, false
}

// DisplayOrder returns the present observations in the order charts and
// reports show them: chronological for calendar series, lexicographic by
// label otherwise.
func (s Series) DisplayOrder() []Observation {
	present := s.Present()
	if s.IsCalendar() {
		sort.SliceStable(present, func(i, j int) bool {
			a, aok := MonthIndex(present[i].Period)
			b, bok := MonthIndex(present[j].Period)
			switch {
			case aok && bok:
				return a < b
			case aok != bok:
				return aok
			default:
				return present[i].Period < present[j].Period
			}
		})
		return present
	}
	sort.SliceStable(present, func(i, j int) bool {
		return present[i].Period < present[j].Period
	})
	return present
}

// Validate checks that period labels are unique (month aliases count as the
// same period) and that no value is infinite.
func (s Series) Validate() error {
	seen := make(map[string]string, len(s))
	for _, o := range s {
		key := strings.ToLower(strings.TrimSpace(o.Period))
		if key == "" {
			return fmt.Errorf("observation with empty period label")
		}
		if idx, ok := MonthIndex(o.Period); ok {
			key = Calendar[idx]
		}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("duplicate period %q (already given as %q)", o.Period, prev)
		}
		seen[key] = o.Period

		if o.Value != nil && math.IsInf(*o.Value, 0) {
			return fmt.Errorf("period %q has an infinite value", o.Period)
		}
	}
	return nil
}

// MeanStdDev calculates the mean and population standard deviation of values.
func MeanStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	stdDev = math.Sqrt(varianceSum / float64(len(values)))

	return mean, stdDev
}

// CoefficientOfVariation returns stdDev/mean as a percentage, or 0 when the
// mean is exactly zero.
func CoefficientOfVariation(mean, stdDev float64) float64 {
	if mean == 0 {
		return 0
	}
	return stdDev / mean * 100
}
