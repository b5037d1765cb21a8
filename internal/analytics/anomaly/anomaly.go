package anomaly

import (
	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

// Direction tells on which side of the mean an anomaly lies
type Direction string

const (
	High Direction = "High" // Above the mean
	Low  Direction = "Low"  // Below the mean
)

// Anomaly represents a statistically extreme period of an indicator
type Anomaly struct {
	Period       string    `json:"period" yaml:"period"`
	Value        float64   `json:"value" yaml:"value"`
	ZScore       float64   `json:"z_score" yaml:"z_score"`
	Direction    Direction `json:"direction" yaml:"direction"`
	PctDeviation float64   `json:"pct_deviation_from_mean" yaml:"pct_deviation_from_mean"` // (value-mean)/mean*100
}

// DetectorConfig holds configuration for anomaly detection
type DetectorConfig struct {
	// Threshold is the number of standard deviations beyond which a value is anomalous
	Threshold float64

	// MinDataPoints minimum number of present values required for detection
	MinDataPoints int
}

// DefaultConfig returns default detector configuration
func DefaultConfig() DetectorConfig {
	return ConfigFromThresholds(analytics.DefaultThresholds())
}

// ConfigFromThresholds builds a detector configuration from the shared thresholds
func ConfigFromThresholds(t analytics.Thresholds) DetectorConfig {
	return DetectorConfig{
		Threshold:     t.ZScore,
		MinDataPoints: t.MinAnomalySample,
	}
}
