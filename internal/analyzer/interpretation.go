package analyzer

import (
	"fmt"
	"strings"

	"github.com/slopez1023/ProyectoDiana/internal/analytics/compliance"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/periodicity"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/statistics"
	"github.com/slopez1023/ProyectoDiana/internal/analytics/trend"
)

var trendSentences = map[trend.Trend]string{
	trend.Growth:    "Values show a positive growth trend over the recorded periods.",
	trend.Retreat:   "Values show a declining trend that requires attention.",
	trend.Stability: "Values remain stable across the analyzed period.",
	trend.Volatile:  "Values vary widely, indicating volatile behaviour.",
}

var statusSentences = map[compliance.Status]string{
	compliance.Green:  "Current status is SATISFACTORY, meeting the established targets.",
	compliance.Yellow: "Current status is ACCEPTABLE but needs follow-up to prevent deterioration.",
	compliance.Red:    "Current status is CRITICAL, below the minimum expected levels.",
}

// Interpret builds the display summary of an analysis. Sentences appear in a
// fixed order: cadence, trend, status, mean and anomaly count. Trend and
// status sentences are omitted when there is nothing to say.
func Interpret(
	name string,
	per periodicity.Periodicity,
	tr trend.Trend,
	status compliance.Status,
	stats statistics.Summary,
	anomalyCount int,
) string {
	parts := []string{
		fmt.Sprintf("The indicator '%s' reports with %s periodicity.", name, strings.ToLower(string(per))),
	}

	if s, ok := trendSentences[tr]; ok {
		parts = append(parts, s)
	}
	if s, ok := statusSentences[status]; ok {
		parts = append(parts, s)
	}
	if stats.HasData() {
		parts = append(parts, fmt.Sprintf("The mean value is %.2f%%.", stats.Mean))
	}
	if anomalyCount > 0 {
		parts = append(parts, fmt.Sprintf("%d anomalous values were detected and should be reviewed.", anomalyCount))
	}

	return strings.Join(parts, " ")
}
