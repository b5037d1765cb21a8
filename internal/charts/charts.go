// Package charts renders indicator analyses as PNG images.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/slopez1023/ProyectoDiana/internal/analytics/compliance"
	"github.com/slopez1023/ProyectoDiana/internal/logging"
	"github.com/slopez1023/ProyectoDiana/internal/models"
)

// ErrNoData is returned when there is nothing to draw
var ErrNoData = errors.New("no data to chart")

// Chart names in the map returned by RenderAll
const (
	ComparisonChart = "comparison"
	StatusChart     = "status"
	seriesPrefix    = "series:"
)

// Maximum indicators on the comparison chart
const defaultComparisonLimit = 20

var (
	seriesColor = color.RGBA{R: 46, G: 134, B: 171, A: 255}
	targetColor = color.RGBA{R: 220, G: 53, B: 69, A: 255}

	statusColors = map[compliance.Status]color.Color{
		compliance.Green:  color.RGBA{R: 40, G: 167, B: 69, A: 255},
		compliance.Yellow: color.RGBA{R: 255, G: 193, B: 7, A: 255},
		compliance.Red:    color.RGBA{R: 220, G: 53, B: 69, A: 255},
		compliance.Gray:   color.RGBA{R: 108, G: 117, B: 125, A: 255},
	}
)

// Renderer writes charts into a directory
type Renderer struct {
	dir             string
	width, height   vg.Length
	comparisonLimit int
	logger          *logging.Logger
}

// NewRenderer creates a Renderer writing into dir
func NewRenderer(dir string, logger *logging.Logger) *Renderer {
	if logger == nil {
		logger = logging.Global()
	}
	return &Renderer{
		dir:             dir,
		width:           10 * vg.Inch,
		height:          5 * vg.Inch,
		comparisonLimit: defaultComparisonLimit,
		logger:          logger,
	}
}

// SeriesKey is the RenderAll key of an indicator's time series chart
func SeriesKey(indicatorID string) string {
	return seriesPrefix + indicatorID
}

// RenderAll draws one time series per indicator plus the comparison and
// status charts. Indicators without data are skipped.
func (r *Renderer) RenderAll(records []*models.IndicatorRecord, analyses []*models.AnalysisRecord) (map[string]string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory %s: %w", r.dir, err)
	}

	byID := make(map[string]*models.AnalysisRecord, len(analyses))
	for _, a := range analyses {
		byID[a.IndicatorID] = a
	}

	paths := make(map[string]string, len(records)+2)
	for _, rec := range records {
		a, ok := byID[rec.ID]
		if !ok {
			continue
		}
		path, err := r.TimeSeries(rec, a)
		if errors.Is(err, ErrNoData) {
			continue
		}
		if err != nil {
			return paths, err
		}
		paths[SeriesKey(rec.ID)] = path
	}

	if path, err := r.Comparison(analyses); err == nil {
		paths[ComparisonChart] = path
	} else if !errors.Is(err, ErrNoData) {
		return paths, err
	}

	if path, err := r.StatusDistribution(analyses); err == nil {
		paths[StatusChart] = path
	} else if !errors.Is(err, ErrNoData) {
		return paths, err
	}

	r.logger.Info("Charts rendered", "dir", r.dir, "count", len(paths))
	return paths, nil
}

// TimeSeries draws the measured periods of an indicator in display order,
// with a horizontal target line when the indicator has a target.
func (r *Renderer) TimeSeries(rec *models.IndicatorRecord, a *models.AnalysisRecord) (string, error) {
	observations := rec.Values.DisplayOrder()
	if len(observations) == 0 {
		return "", ErrNoData
	}

	p := plot.New()
	p.Title.Text = truncate(rec.Name, 60)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Value"
	if a != nil {
		p.X.Label.Text = fmt.Sprintf("%s | %s | %s", a.Periodicity, a.Trend, a.Status)
	}

	points := make(plotter.XYs, len(observations))
	labels := make([]string, len(observations))
	for i, o := range observations {
		points[i].X = float64(i)
		points[i].Y = *o.Value
		labels[i] = o.Period
	}

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return "", fmt.Errorf("failed to build series for %s: %w", rec.ID, err)
	}
	line.Color = seriesColor
	line.Width = vg.Points(2)
	scatter.Color = seriesColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(plotter.NewGrid(), line, scatter)
	p.Legend.Add("value", line, scatter)

	if rec.Target != nil && !math.IsNaN(*rec.Target) {
		target := *rec.Target
		goal := plotter.NewFunction(func(float64) float64 { return target })
		goal.Color = targetColor
		goal.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(goal)
		p.Legend.Add("target", goal)
		p.Y.Min = math.Min(p.Y.Min, target)
		p.Y.Max = math.Max(p.Y.Max, target)
	}

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.Legend.Top = true

	return r.save(p, "series_"+sanitize(rec.ID)+".png")
}

// Comparison draws the mean of each indicator that has data
func (r *Renderer) Comparison(analyses []*models.AnalysisRecord) (string, error) {
	var values plotter.Values
	var labels []string
	for _, a := range analyses {
		if !a.Statistics.HasData() {
			continue
		}
		values = append(values, a.Statistics.Mean)
		labels = append(labels, truncate(a.Name, 20))
		if len(values) == r.comparisonLimit {
			break
		}
	}
	if len(values) == 0 {
		return "", ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Mean value per indicator"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Mean"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return "", fmt.Errorf("failed to build comparison chart: %w", err)
	}
	bars.Color = seriesColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(plotter.NewGrid(), bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.XAlign = draw.XRight

	return r.save(p, "comparison.png")
}

// StatusDistribution draws how many indicators fall in each status
func (r *Renderer) StatusDistribution(analyses []*models.AnalysisRecord) (string, error) {
	if len(analyses) == 0 {
		return "", ErrNoData
	}

	counts := make(map[compliance.Status]int, len(compliance.All))
	for _, a := range analyses {
		counts[a.Status]++
	}

	p := plot.New()
	p.Title.Text = "Compliance status distribution"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Indicators"

	labels := make([]string, len(compliance.All))
	for i, status := range compliance.All {
		labels[i] = string(status)

		// One chart per status so each bar keeps its own colour
		values := make(plotter.Values, len(compliance.All))
		values[i] = float64(counts[status])
		bars, err := plotter.NewBarChart(values, vg.Points(40))
		if err != nil {
			return "", fmt.Errorf("failed to build status chart: %w", err)
		}
		bars.Color = statusColors[status]
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)

		if counts[status] > 0 {
			label, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: float64(i), Y: float64(counts[status])}},
				Labels: []string{fmt.Sprintf("%d", counts[status])},
			})
			if err == nil {
				p.Add(label)
			}
		}
	}
	p.NominalX(labels...)
	p.Y.Min = 0

	return r.save(p, "status.png")
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	path := filepath.Join(r.dir, name)
	if err := p.Save(r.width, r.height, path); err != nil {
		return "", fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return path, nil
}

// sanitize keeps identifiers safe for use in file names
func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
