// Package trend fits a least-squares line through an indicator's measured
// months and classifies the direction of travel.
package trend

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

// Trend classifies the behaviour of a series over time
type Trend string

const (
	Growth           Trend = "Growth"
	Stability        Trend = "Stability"
	Retreat          Trend = "Retreat"
	Volatile         Trend = "Volatile"
	InsufficientData Trend = "Insufficient-data"
)

// All lists every trend in report order
var All = []Trend{Growth, Stability, Retreat, Volatile, InsufficientData}

// Result is the outcome of a trend analysis
type Result struct {
	Trend Trend   `json:"trend"`
	Slope float64 `json:"slope"`
	// CoefficientOfVariation of the measured values, in percent
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
}

// Analyze classifies the trend of the calendar values of a series.
// Unmeasured months are dropped and the remaining values are indexed
// 0..n-1, so gaps are compressed rather than interpolated.
func Analyze(series analytics.Series, thresholds analytics.Thresholds) Result {
	values := series.Chronological()
	if len(values) < 2 {
		return Result{Trend: InsufficientData, Slope: 0}
	}

	slope := Slope(values)
	mean, stdDev := analytics.MeanStdDev(values)
	cv := analytics.CoefficientOfVariation(mean, stdDev)

	result := Result{Slope: slope, CoefficientOfVariation: cv}

	// Volatility is checked first and overrides the slope classes
	switch {
	case cv > thresholds.Volatility:
		result.Trend = Volatile
	case math.Abs(slope) < thresholds.Stability:
		result.Trend = Stability
	case slope > 0:
		result.Trend = Growth
	default:
		result.Trend = Retreat
	}

	return result
}

// Slope returns the ordinary least-squares slope of values against their
// indices. It returns 0 for fewer than two values.
func Slope(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	_, beta := stat.LinearRegression(xs, values, nil, false)
	return beta
}
