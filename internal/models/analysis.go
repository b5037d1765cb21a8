package models

import (
	"time"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/anomaly"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/compliance"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/periodicity"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/statistics"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/trend"
)

// AnalysisRecord is the outcome of analyzing one indicator. It is built once
// by the analyzer and treated as read-only afterwards.
type AnalysisRecord struct {
	IndicatorID    string                  `json:"indicator_id" yaml:"indicator_id"`
	Name           string                  `json:"name" yaml:"name"`
	Sector         string                  `json:"sector,omitempty" yaml:"sector,omitempty"`
	Periodicity    periodicity.Periodicity `json:"periodicity" yaml:"periodicity"`
	Trend          trend.Trend             `json:"trend" yaml:"trend"`
	Slope          float64                 `json:"slope" yaml:"slope"`
	Status         compliance.Status       `json:"status" yaml:"status"`
	Compliance     compliance.Decision     `json:"compliance" yaml:"compliance"`
	Statistics     statistics.Summary      `json:"statistics" yaml:"statistics"`
	Anomalies      []anomaly.Anomaly       `json:"anomalies" yaml:"anomalies"`
	Interpretation string                  `json:"interpretation" yaml:"interpretation"`

	Target      *float64  `json:"target,omitempty" yaml:"target,omitempty"`
	LatestValue *float64  `json:"latest_value,omitempty" yaml:"latest_value,omitempty"`
	AnalyzedAt  time.Time `json:"analyzed_at" yaml:"analyzed_at"`
}

// Gap returns target minus mean, or false when either is missing
func (a *AnalysisRecord) Gap() (float64, bool) {
	if !analytics.IsPresent(a.Target) || !a.Statistics.HasData() {
		return 0, false
	}
	return *a.Target - a.Statistics.Mean, true
}
