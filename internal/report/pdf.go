package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/slopez1023/ProyectoDiana/internal/analytics/trend"
)

type rgb struct{ r, g, b int }

var (
	headerBlue = rgb{46, 134, 171}
	headerRed  = rgb{220, 53, 69}
	stripe     = rgb{235, 235, 235}
)

// pdfWriter wraps fpdf with the report's layout helpers
type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// WritePDF renders the report as a PDF document to w
func WritePDF(w io.Writer, s *Summary, meta Meta) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(meta.Title, true)
	pdf.SetCreator("indicators", true)

	pw := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pw.cover(meta)
	pw.executiveSummary(s)
	pw.periodicity(s)
	pw.trends(s)
	pw.critical(s)
	pw.recommendations(s)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func (pw *pdfWriter) cover(meta Meta) {
	pdf := pw.pdf
	pdf.AddPage()
	pdf.Ln(60)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.MultiCell(0, 12, pw.tr(meta.Title), "", "C", false)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 14)
	pdf.MultiCell(0, 8, pw.tr("Institutional indicator analysis"), "", "C", false)
	pdf.Ln(30)
	if meta.Entity != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, pw.tr(meta.Entity), "", "C", false)
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 7, meta.GeneratedAt.Format("2006-01-02 15:04"), "", "C", false)
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(0, 5, "run "+meta.RunID, "", "C", false)
	pdf.AddPage()
}

func (pw *pdfWriter) section(title, text string) {
	pdf := pw.pdf
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(headerBlue.r, headerBlue.g, headerBlue.b)
	pdf.CellFormat(0, 9, pw.tr(title), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	if text != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, pw.tr(text), "", "J", false)
		pdf.Ln(3)
	}
}

func (pw *pdfWriter) table(header []string, widths []float64, rows [][]string, head rgb) {
	pdf := pw.pdf

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(head.r, head.g, head.b)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range header {
		pdf.CellFormat(widths[i], 8, pw.tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(stripe.r, stripe.g, stripe.b)
	for n, row := range rows {
		for i, cell := range row {
			align := "C"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 7, pw.tr(cell), "1", 0, align, n%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func (pw *pdfWriter) executiveSummary(s *Summary) {
	pw.section("1. Executive summary",
		"This report presents the analysis of the institutional indicators for the current period: "+
			"their behaviour over time, their trends and their level of compliance.")

	rows := [][]string{{"Indicators evaluated", fmt.Sprintf("%d", s.Total), "100%"}}
	for _, c := range s.Status {
		rows = append(rows, []string{c.Label, fmt.Sprintf("%d", c.Count), fmt.Sprintf("%.1f%%", c.Percent)})
	}
	pw.table([]string{"Metric", "Value", "Percent"}, []float64{90, 40, 40}, rows, headerBlue)
}

func (pw *pdfWriter) periodicity(s *Summary) {
	pw.section("2. Periodicity",
		"Indicators are grouped by how often they are measured.")

	rows := make([][]string, 0, len(s.Periodicity))
	for _, c := range s.Periodicity {
		rows = append(rows, []string{c.Label, fmt.Sprintf("%d", c.Count), fmt.Sprintf("%.1f%%", c.Percent)})
	}
	pw.table([]string{"Periodicity", "Count", "Percent"}, []float64{80, 45, 45}, rows, headerBlue)
}

func (pw *pdfWriter) trends(s *Summary) {
	pw.section("3. Trends",
		"Trends show how each indicator moved over the measured periods.")

	rows := make([][]string, 0, len(s.Trends))
	for _, c := range s.Trends {
		rows = append(rows, []string{c.Label, fmt.Sprintf("%d", c.Count), TrendDescriptions[trend.Trend(c.Label)]})
	}
	pw.table([]string{"Trend", "Count", "Meaning"}, []float64{50, 30, 90}, rows, headerBlue)
}

func (pw *pdfWriter) critical(s *Summary) {
	if s.CriticalCount == 0 {
		pw.section("4. Critical indicators",
			"No indicator is in critical status for the evaluated period.")
		return
	}

	pw.section("4. Critical indicators",
		fmt.Sprintf("%d indicator(s) are in critical status and need immediate corrective action.", s.CriticalCount))

	rows := make([][]string, 0, len(s.Critical))
	for _, row := range s.Critical {
		rows = append(rows, []string{
			truncateRunes(row.Name, 35),
			formatValue(&row.Mean),
			formatValue(row.Target),
			formatValue(row.Gap),
			formatLevel(row.Satisfactory, row.Rescaled),
			formatLevel(row.Critical, row.Rescaled),
		})
	}
	pw.table([]string{"Indicator", "Mean", "Target", "Gap", "Satisfactory", "Critical"},
		[]float64{66, 20, 20, 20, 22, 22}, rows, headerRed)

	if s.hasRescaled() {
		pw.pdf.SetFont("Helvetica", "I", 8)
		pw.pdf.MultiCell(0, 4, pw.tr(rescaledNote), "", "L", false)
		pw.pdf.Ln(2)
	}
}

func (pw *pdfWriter) recommendations(s *Summary) {
	pw.section("5. Recommendations", "Based on this analysis the following actions are recommended:")

	pdf := pw.pdf
	for _, r := range s.Recommendations {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Write(5, pw.tr("- "+r.Title+": "))
		pdf.SetFont("Helvetica", "", 10)
		pdf.Write(5, pw.tr(r.Text))
		pdf.Ln(7)
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
