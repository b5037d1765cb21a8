package analyzer

import (
	"fmt"

	"github.com/slopez1023/ProyectoDiana/internal/models"
)

// BatchResult holds the analyses of a batch and the records that failed
type BatchResult struct {
	Records  []*models.AnalysisRecord `json:"records"`
	Failures []*Failure               `json:"failures,omitempty"`
}

// AnalyzeBatch analyzes every record independently. A record that fails,
// or panics, is logged and skipped; the rest of the batch still runs.
// Output order follows input order.
func (a *Analyzer) AnalyzeBatch(records []*models.IndicatorRecord) *BatchResult {
	result := &BatchResult{
		Records: make([]*models.AnalysisRecord, 0, len(records)),
	}

	a.logger.Info("Analyzing indicators", "count", len(records))

	for i, rec := range records {
		analysis, err := a.safeAnalyze(rec)
		if err != nil {
			failure := newFailure(i, rec, err)
			a.logger.With("indicator", failure.Name, "indicator_id", failure.IndicatorID).
				Error("Failed to analyze indicator", "index", i, "error", err)
			result.Failures = append(result.Failures, failure)
			continue
		}
		result.Records = append(result.Records, analysis)
	}

	a.logger.Info("Analysis complete",
		"analyzed", len(result.Records),
		"failed", len(result.Failures))

	return result
}

func (a *Analyzer) safeAnalyze(rec *models.IndicatorRecord) (analysis *models.AnalysisRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			analysis = nil
			err = &PanicError{Value: r}
		}
	}()
	return a.Analyze(rec)
}

// PanicError wraps a value recovered while analyzing a record
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic during analysis: %v", e.Value)
}
