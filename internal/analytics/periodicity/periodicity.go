// Package periodicity infers how often an indicator is measured from the
// calendar months that carry a value.
package periodicity

import (
	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

// Periodicity is the inferred measurement cadence
type Periodicity string

const (
	Monthly       Periodicity = "Monthly"
	Bimonthly     Periodicity = "Bimonthly"
	Quarterly     Periodicity = "Quarterly"
	FourMonthly   Periodicity = "Four-monthly"
	Semiannual    Periodicity = "Semiannual"
	Annual        Periodicity = "Annual"
	Indeterminate Periodicity = "Indeterminate"
)

// All lists every periodicity in report order
var All = []Periodicity{Monthly, Bimonthly, Quarterly, FourMonthly, Semiannual, Annual, Indeterminate}

// Classify infers the cadence of a series.
//
// With two or more measured months the average gap between consecutive
// months picks the band. With a single month the count of present values is
// used instead.
func Classify(series analytics.Series) Periodicity {
	if series.Len() == 0 {
		return Indeterminate
	}

	positions := series.Positions()
	if len(positions) == 0 {
		return Indeterminate
	}

	if len(positions) > 1 {
		var total int
		for i := 1; i < len(positions); i++ {
			total += positions[i] - positions[i-1]
		}
		return fromGap(float64(total) / float64(len(positions)-1))
	}

	// A single position means a single calendar value, so only the Annual
	// branch is reachable unless non-calendar labels add to the count.
	return fromCount(len(series.Values()))
}

// fromGap maps an average gap in months to a band
func fromGap(gap float64) Periodicity {
	switch {
	case gap <= 1.5:
		return Monthly
	case gap <= 2.5:
		return Bimonthly
	case gap <= 3.5:
		return Quarterly
	case gap <= 5:
		return FourMonthly
	case gap <= 7:
		return Semiannual
	default:
		return Annual
	}
}

func fromCount(count int) Periodicity {
	switch count {
	case 12:
		return Monthly
	case 6:
		return Bimonthly
	case 4:
		return Quarterly
	case 3:
		return FourMonthly
	case 2:
		return Semiannual
	case 1:
		return Annual
	default:
		return Indeterminate
	}
}
