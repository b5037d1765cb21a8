// Package analyzer composes the indicator classifiers into one analysis per
// indicator record, singly or in batches that tolerate per-record failures.
package analyzer

import (
	"fmt"
	"time"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/anomaly"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/compliance"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/periodicity"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/statistics"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/trend"
	"github.com/slopez1023/ProyectoDiana/internal/logging"
	"github.com/slopez1023/ProyectoDiana/internal/models"
)

// Analyzer runs every classifier over an indicator record
type Analyzer struct {
	logger     *logging.Logger
	thresholds analytics.Thresholds
	detector   anomaly.DetectorConfig
	now        func() time.Time
}

// New creates a new Analyzer. A nil logger falls back to the global one.
func New(thresholds analytics.Thresholds, logger *logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.Global()
	}
	return &Analyzer{
		logger:     logger,
		thresholds: thresholds,
		detector:   anomaly.ConfigFromThresholds(thresholds),
		now:        time.Now,
	}
}

// WithClock replaces the clock used to stamp AnalyzedAt
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// Analyze validates rec and builds its analysis record
func (a *Analyzer) Analyze(rec *models.IndicatorRecord) (*models.AnalysisRecord, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", models.ErrInvalidRecord)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	series := rec.Values

	per := periodicity.Classify(series)
	tr := trend.Analyze(series, a.thresholds)
	stats := statistics.Calculate(series)
	anomalies := anomaly.Detect(series, a.detector)

	current := currentValue(series, stats)
	decision := compliance.Explain(rec.ComplianceInput(current), a.thresholds)
	status := decision.Status

	// NaN targets are missing; they must not reach the exports
	var target *float64
	if analytics.IsPresent(rec.Target) {
		target = rec.Target
	}

	return &models.AnalysisRecord{
		IndicatorID:    rec.ID,
		Name:           rec.Name,
		Sector:         rec.Sector,
		Periodicity:    per,
		Trend:          tr.Trend,
		Slope:          tr.Slope,
		Status:         status,
		Compliance:     decision,
		Statistics:     stats,
		Anomalies:      anomalies,
		Interpretation: Interpret(rec.Name, per, tr.Trend, status, stats, len(anomalies)),
		Target:         target,
		LatestValue:    current,
		AnalyzedAt:     a.now(),
	}, nil
}

// currentValue is the latest calendar value, else the mean of every present
// value, else nil so the status comes out Gray.
func currentValue(series analytics.Series, stats statistics.Summary) *float64 {
	if v, ok := series.Latest(); ok {
		return analytics.Float(v)
	}
	if stats.HasData() {
		return analytics.Float(stats.Mean)
	}
	return nil
}
