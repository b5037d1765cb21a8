package analytics

import "fmt"

// Thresholds holds the tunable cut-offs used by the classifiers.
type Thresholds struct {
	// ZScore is the |z| above which a value is anomalous
	ZScore float64 `mapstructure:"z_score" json:"z_score" yaml:"z_score"`

	// MinAnomalySample is the minimum number of present values before
	// anomaly detection runs
	MinAnomalySample int `mapstructure:"min_anomaly_sample" json:"min_anomaly_sample" yaml:"min_anomaly_sample"`

	// Volatility is the coefficient of variation (%) above which a trend is volatile
	Volatility float64 `mapstructure:"volatility" json:"volatility" yaml:"volatility"`

	// Stability is the |slope| below which a trend is stable
	Stability float64 `mapstructure:"stability" json:"stability" yaml:"stability"`

	// DefaultSatisfactory is used when neither achieved level nor target exist
	DefaultSatisfactory float64 `mapstructure:"default_satisfactory" json:"default_satisfactory" yaml:"default_satisfactory"`

	// CriticalMultiplier derives the critical level of a higher-is-better indicator
	CriticalMultiplier float64 `mapstructure:"critical_multiplier" json:"critical_multiplier" yaml:"critical_multiplier"`

	// InvertedCriticalMultiplier derives the critical level of a lower-is-better indicator
	InvertedCriticalMultiplier float64 `mapstructure:"inverted_critical_multiplier" json:"inverted_critical_multiplier" yaml:"inverted_critical_multiplier"`

	// MagnitudeGreen and MagnitudeYellow classify indicators that have no
	// target at all, on a 0-100 scale
	MagnitudeGreen  float64 `mapstructure:"magnitude_green" json:"magnitude_green" yaml:"magnitude_green"`
	MagnitudeYellow float64 `mapstructure:"magnitude_yellow" json:"magnitude_yellow" yaml:"magnitude_yellow"`
}

// DefaultThresholds returns the thresholds the institutional boards are tuned for
func DefaultThresholds() Thresholds {
	return Thresholds{
		ZScore:                     2.5,
		MinAnomalySample:           3,
		Volatility:                 15.0,
		Stability:                  0.5,
		DefaultSatisfactory:        0.80,
		CriticalMultiplier:         0.75,
		InvertedCriticalMultiplier: 1.25,
		MagnitudeGreen:             80,
		MagnitudeYellow:            60,
	}
}

// Validate validates the thresholds
func (t Thresholds) Validate() error {
	if t.ZScore <= 0 {
		return fmt.Errorf("z_score must be positive")
	}
	if t.MinAnomalySample < 2 {
		return fmt.Errorf("min_anomaly_sample must be at least 2")
	}
	if t.Volatility <= 0 {
		return fmt.Errorf("volatility must be positive")
	}
	if t.Stability < 0 {
		return fmt.Errorf("stability cannot be negative")
	}
	if t.DefaultSatisfactory <= 0 {
		return fmt.Errorf("default_satisfactory must be positive")
	}
	if t.CriticalMultiplier <= 0 || t.CriticalMultiplier >= 1 {
		return fmt.Errorf("critical_multiplier must be between 0 and 1")
	}
	if t.InvertedCriticalMultiplier <= 1 {
		return fmt.Errorf("inverted_critical_multiplier must be greater than 1")
	}
	if t.MagnitudeYellow >= t.MagnitudeGreen {
		return fmt.Errorf("magnitude_yellow must be lower than magnitude_green")
	}
	return nil
}
