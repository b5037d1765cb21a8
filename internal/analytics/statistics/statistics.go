// Package statistics computes descriptive statistics over the measured
// periods of an indicator.
package statistics

import (
	"encoding/json"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

// Summary holds descriptive statistics. When Count is zero every numeric
// field is NaN.
type Summary struct {
	Mean                   float64 `json:"mean" yaml:"mean"`
	Median                 float64 `json:"median" yaml:"median"`
	StdDev                 float64 `json:"stdev" yaml:"stdev"` // population
	Min                    float64 `json:"min" yaml:"min"`
	Max                    float64 `json:"max" yaml:"max"`
	Range                  float64 `json:"range" yaml:"range"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation" yaml:"coefficient_of_variation"`
	Count                  int     `json:"count" yaml:"count"`
}

// Empty returns the summary of a series with no measurements
func Empty() Summary {
	nan := math.NaN()
	return Summary{
		Mean:                   nan,
		Median:                 nan,
		StdDev:                 nan,
		Min:                    nan,
		Max:                    nan,
		Range:                  nan,
		CoefficientOfVariation: nan,
		Count:                  0,
	}
}

// HasData reports whether the summary was computed from at least one value
func (s Summary) HasData() bool {
	return s.Count > 0
}

// Calculate computes the summary over the present values of a series
func Calculate(series analytics.Series) Summary {
	return FromValues(series.Values())
}

// FromValues computes the summary over values, which must not contain NaN.
func FromValues(values []float64) Summary {
	if len(values) == 0 {
		return Empty()
	}

	data := stats.Float64Data(values)

	// The stats functions only fail on empty input, which is handled above
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stdDev, _ := stats.StandardDeviationPopulation(data)
	minimum, _ := stats.Min(data)
	maximum, _ := stats.Max(data)

	return Summary{
		Mean:                   mean,
		Median:                 median,
		StdDev:                 stdDev,
		Min:                    minimum,
		Max:                    maximum,
		Range:                  maximum - minimum,
		CoefficientOfVariation: analytics.CoefficientOfVariation(mean, stdDev),
		Count:                  len(values),
	}
}

// MarshalJSON writes NaN fields as null, which encoding/json cannot encode
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Mean                   *float64 `json:"mean"`
		Median                 *float64 `json:"median"`
		StdDev                 *float64 `json:"stdev"`
		Min                    *float64 `json:"min"`
		Max                    *float64 `json:"max"`
		Range                  *float64 `json:"range"`
		CoefficientOfVariation *float64 `json:"coefficient_of_variation"`
		Count                  int      `json:"count"`
	}{
		Mean:                   nullable(s.Mean),
		Median:                 nullable(s.Median),
		StdDev:                 nullable(s.StdDev),
		Min:                    nullable(s.Min),
		Max:                    nullable(s.Max),
		Range:                  nullable(s.Range),
		CoefficientOfVariation: nullable(s.CoefficientOfVariation),
		Count:                  s.Count,
	})
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
