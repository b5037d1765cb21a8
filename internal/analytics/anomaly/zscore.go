// Package anomaly flags indicator periods whose value is far from the
// indicator's own mean.
package anomaly

import (
	"math"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

// Detect finds anomalies using the Z-Score (standard score) method.
// Mean and standard deviation are taken over all present values, and points
// with |Z| > threshold are reported in series order.
//
// With population statistics the largest reachable |Z| for n values is
// (n-1)/sqrt(n), so the default 2.5 threshold needs at least 9 values.
func Detect(series analytics.Series, config DetectorConfig) []Anomaly {
	anomalies := []Anomaly{}

	values := series.Values()
	if len(values) < config.MinDataPoints {
		return anomalies
	}

	mean, stdDev := analytics.MeanStdDev(values)

	// No variation, nothing stands out
	if stdDev == 0 {
		return anomalies
	}

	for _, o := range series {
		if !o.Present() {
			continue
		}

		value := *o.Value
		zScore := CalculateZScore(value, mean, stdDev)
		if math.Abs(zScore) <= config.Threshold {
			continue
		}

		direction := Low
		if zScore > 0 {
			direction = High
		}

		anomalies = append(anomalies, Anomaly{
			Period:       o.Period,
			Value:        value,
			ZScore:       zScore,
			Direction:    direction,
			PctDeviation: pctDeviation(value, mean),
		})
	}

	return anomalies
}

// CalculateZScore calculates Z-Score for a single value given mean and stdDev
func CalculateZScore(value, mean, stdDev float64) float64 {
	if stdDev == 0 {
		return 0
	}
	return (value - mean) / stdDev
}

// pctDeviation is 0 for a zero mean, where a percentage is undefined
func pctDeviation(value, mean float64) float64 {
	if mean == 0 {
		return 0
	}
	return (value - mean) / mean * 100
}
