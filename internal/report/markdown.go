package report

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/slopez1023/ProyectoDiana/internal/analytics/trend"
)

// Markdown renders the report as a Markdown document. Section order matches
// the PDF report.
func Markdown(s *Summary, meta Meta) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", meta.Title)
	if meta.Entity != "" {
		fmt.Fprintf(&b, "**%s**\n\n", meta.Entity)
	}
	fmt.Fprintf(&b, "Generated %s · run `%s`\n\n", meta.GeneratedAt.Format("2006-01-02 15:04"), meta.RunID)

	b.WriteString("## 1. Executive summary\n\n")
	b.WriteString("| Metric | Value | Percent |\n|---|---:|---:|\n")
	fmt.Fprintf(&b, "| Indicators evaluated | %d | 100%% |\n", s.Total)
	for _, c := range s.Status {
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", c.Label, c.Count, c.Percent)
	}

	b.WriteString("\n## 2. Periodicity\n\n")
	b.WriteString("| Periodicity | Count | Percent |\n|---|---:|---:|\n")
	for _, c := range s.Periodicity {
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", c.Label, c.Count, c.Percent)
	}

	b.WriteString("\n## 3. Trends\n\n")
	b.WriteString("| Trend | Count | Meaning |\n|---|---:|---|\n")
	for _, c := range s.Trends {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", c.Label, c.Count, TrendDescriptions[trend.Trend(c.Label)])
	}

	b.WriteString("\n## 4. Critical indicators\n\n")
	if s.CriticalCount == 0 {
		b.WriteString("No indicator is in critical status for the evaluated period.\n")
	} else {
		fmt.Fprintf(&b, "%d indicator(s) are in critical status and need corrective action.\n\n", s.CriticalCount)
		b.WriteString("| Indicator | Mean | Target | Gap | Satisfactory | Critical |\n|---|---:|---:|---:|---:|---:|\n")
		for _, row := range s.Critical {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				escapeCell(row.Name), formatValue(&row.Mean), formatValue(row.Target), formatValue(row.Gap),
				formatLevel(row.Satisfactory, row.Rescaled), formatLevel(row.Critical, row.Rescaled))
		}
		if s.hasRescaled() {
			b.WriteString("\n\\" + rescaledNote + "\n")
		}
	}

	b.WriteString("\n## 5. Recommendations\n\n")
	for _, r := range s.Recommendations {
		fmt.Fprintf(&b, "- **%s:** %s\n", r.Title, r.Text)
	}

	return b.String()
}

// HTML renders the Markdown report to a standalone HTML page
func HTML(s *Summary, meta Meta) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(s, meta)), &body); err != nil {
		return nil, fmt.Errorf("failed to render html: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\"/>\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", htmlEscape(meta.Title))
	page.WriteString("<style>body{font-family:sans-serif;max-width:960px;margin:auto}" +
		"table{border-collapse:collapse}th,td{border:1px solid #999;padding:4px 8px}" +
		"th{background:#2E86AB;color:#fff}</style>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

func formatValue(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// rescaledNote explains the marker formatLevel adds
const rescaledNote = "* Level compared on a 0-1 scale because the value and its thresholds used different scales."

func formatLevel(v float64, rescaled bool) string {
	if rescaled {
		return fmt.Sprintf("%.2f*", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")

func htmlEscape(s string) string {
	return htmlEscaper.Replace(s)
}
