// Package report aggregates a batch of analyses and renders it as PDF,
// Markdown, HTML, JSON or YAML.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/slopez1023/ProyectoDiana/internal/analytics/compliance"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/periodicity"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/trend"
	"github.com/slopez1023/ProyectoDiana/internal/models"
)

// DefaultMaxCritical is the default length of the critical indicators table
const DefaultMaxCritical = 10

// Meta identifies one generated report
type Meta struct {
	Title       string    `json:"title" yaml:"title"`
	Entity      string    `json:"entity,omitempty" yaml:"entity,omitempty"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	RunID       string    `json:"run_id" yaml:"run_id"`
}

// NewMeta stamps a report with the current time and a fresh run ID
func NewMeta(title, entity string) Meta {
	return Meta{
		Title:       title,
		Entity:      entity,
		GeneratedAt: time.Now(),
		RunID:       uuid.NewString(),
	}
}

// Count is one row of a distribution table
type Count struct {
	Label   string  `json:"label" yaml:"label"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// CriticalRow is one indicator in Red status
type CriticalRow struct {
	IndicatorID string   `json:"indicator_id" yaml:"indicator_id"`
	Name        string   `json:"name" yaml:"name"`
	Mean        float64  `json:"mean" yaml:"mean"`
	Target      *float64 `json:"target,omitempty" yaml:"target,omitempty"`
	Gap         *float64 `json:"gap,omitempty" yaml:"gap,omitempty"` // target - mean

	// Levels the status was decided on, after scale reconciliation
	Satisfactory float64 `json:"satisfactory" yaml:"satisfactory"`
	Critical     float64 `json:"critical" yaml:"critical"`
	Inverted     bool    `json:"inverted,omitempty" yaml:"inverted,omitempty"`
	Rescaled     bool    `json:"rescaled,omitempty" yaml:"rescaled,omitempty"`
}

// Recommendation is one action item of the report
type Recommendation struct {
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text" yaml:"text"`
}

// Summary aggregates a batch of analyses
type Summary struct {
	Total           int              `json:"total" yaml:"total"`
	Status          []Count          `json:"status" yaml:"status"`
	Trends          []Count          `json:"trends" yaml:"trends"`
	Periodicity     []Count          `json:"periodicity" yaml:"periodicity"`
	CriticalCount   int              `json:"critical_count" yaml:"critical_count"`
	Critical        []CriticalRow    `json:"critical" yaml:"critical"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// TrendDescriptions explain each trend in the trends table
var TrendDescriptions = map[trend.Trend]string{
	trend.Growth:           "Sustained improvement",
	trend.Stability:        "Constant behaviour",
	trend.Retreat:          "Deterioration that requires attention",
	trend.Volatile:         "High variability",
	trend.InsufficientData: "Needs more measured periods",
}

// Summarize aggregates analyses. Status counts always list every status;
// trend and periodicity counts list only what occurs, most frequent first.
// At most maxCritical rows are kept in Critical.
func Summarize(analyses []*models.AnalysisRecord, maxCritical int) *Summary {
	if maxCritical <= 0 {
		maxCritical = DefaultMaxCritical
	}

	s := &Summary{
		Total:    len(analyses),
		Critical: []CriticalRow{},
	}

	statusCounts := make(map[string]int)
	trendCounts := make(map[string]int)
	periodCounts := make(map[string]int)
	for _, a := range analyses {
		statusCounts[string(a.Status)]++
		trendCounts[string(a.Trend)]++
		periodCounts[string(a.Periodicity)]++

		if a.Status != compliance.Red {
			continue
		}
		s.CriticalCount++
		if len(s.Critical) < maxCritical {
			row := CriticalRow{
				IndicatorID: a.IndicatorID,
				Name:        a.Name,
				Mean:        a.Statistics.Mean,
				Target:      a.Target,

				Satisfactory: a.Compliance.Satisfactory,
				Critical:     a.Compliance.Critical,
				Inverted:     a.Compliance.Inverted,
				Rescaled:     a.Compliance.Rescaled != compliance.RescaleNone,
			}
			if gap, ok := a.Gap(); ok {
				row.Gap = &gap
			}
			s.Critical = append(s.Critical, row)
		}
	}

	for _, status := range compliance.All {
		s.Status = append(s.Status, s.count(string(status), statusCounts[string(status)]))
	}
	s.Trends = s.ranked(trendCounts, trendOrder)
	s.Periodicity = s.ranked(periodCounts, periodicityOrder)
	s.Recommendations = recommend(statusCounts[string(compliance.Red)], statusCounts[string(compliance.Yellow)], trendCounts[string(trend.Retreat)])

	return s
}

// hasRescaled reports whether any critical row was compared on a 0-1 scale
func (s *Summary) hasRescaled() bool {
	for _, row := range s.Critical {
		if row.Rescaled {
			return true
		}
	}
	return false
}

func (s *Summary) count(label string, n int) Count {
	c := Count{Label: label, Count: n}
	if s.Total > 0 {
		c.Percent = float64(n) / float64(s.Total) * 100
	}
	return c
}

// ranked sorts by count, breaking ties with the canonical enum order
func (s *Summary) ranked(counts map[string]int, order map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, s.count(label, n))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return order[out[i].Label] < order[out[j].Label]
	})
	return out
}

var (
	trendOrder       = make(map[string]int)
	periodicityOrder = make(map[string]int)
)

func init() {
	for i, t := range trend.All {
		trendOrder[string(t)] = i
	}
	for i, p := range periodicity.All {
		periodicityOrder[string(p)] = i
	}
}

func recommend(red, yellow, retreat int) []Recommendation {
	var recs []Recommendation
	if red > 0 {
		recs = append(recs, Recommendation{
			Title: "Priority attention",
			Text:  fmt.Sprintf("Put immediate action plans in place for the %d indicator(s) in critical status.", red),
		})
	}
	if yellow > 0 {
		recs = append(recs, Recommendation{
			Title: "Reinforced follow-up",
			Text:  fmt.Sprintf("Monitor the %d indicator(s) in alert status continuously to prevent deterioration.", yellow),
		})
	}
	if retreat > 0 {
		recs = append(recs, Recommendation{
			Title: "Root cause analysis",
			Text:  fmt.Sprintf("Identify what drives the decline observed in %d indicator(s) and define corrective actions.", retreat),
		})
	}
	return append(recs,
		Recommendation{
			Title: "Periodic updates",
			Text:  "Keep data capture up to date so indicators can be followed effectively.",
		},
		Recommendation{
			Title: "Share the results",
			Text:  "Share this analysis with the responsible areas to support data-driven decisions.",
		},
	)
}
