package charts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
	"github.com/slopez1023/ProyectoDiana/internal/analyzer"
	"github.com/slopez1023/ProyectoDiana/internal/logging"
	"github.com/slopez1023/ProyectoDiana/internal/models"
)

func fixtures(t *testing.T) ([]*models.IndicatorRecord, []*models.AnalysisRecord) {
	t.Helper()
	records := []*models.IndicatorRecord{
		{
			ID:     "1",
			Name:   "Cobertura",
			Target: analytics.Float(90),
			Values: analytics.Series{
				{Period: "Marzo", Value: analytics.Float(70)},
				{Period: "Enero", Value: analytics.Float(60)},
				{Period: "Febrero"},
			},
		},
		{
			ID:   "Salud/2",
			Name: "Tasa",
			Values: analytics.Series{
				{Period: "2021", Value: analytics.Float(4)},
				{Period: "2020", Value: analytics.Float(5)},
			},
		},
		{ID: "3", Name: "Sin datos"},
	}

	result := analyzer.New(analytics.DefaultThresholds(), logging.NewNop()).AnalyzeBatch(records)
	require.Empty(t, result.Failures)
	return records, result.Records
}

func assertFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRenderAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	records, analyses := fixtures(t)

	paths, err := NewRenderer(dir, logging.NewNop()).RenderAll(records, analyses)
	require.NoError(t, err)

	assert.Len(t, paths, 4)
	assert.Contains(t, paths, SeriesKey("1"))
	assert.Contains(t, paths, SeriesKey("Salud/2"))
	assert.NotContains(t, paths, SeriesKey("3"))
	assert.Equal(t, filepath.Join(dir, "series_Salud_2.png"), paths[SeriesKey("Salud/2")])

	for _, p := range paths {
		assertFile(t, p)
	}
}

func TestTimeSeries_NoData(t *testing.T) {
	r := NewRenderer(t.TempDir(), logging.NewNop())
	_, err := r.TimeSeries(&models.IndicatorRecord{ID: "x", Name: "x"}, nil)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestComparisonAndStatus_NoData(t *testing.T) {
	r := NewRenderer(t.TempDir(), logging.NewNop())

	_, err := r.Comparison(nil)
	assert.True(t, errors.Is(err, ErrNoData))

	_, err = r.StatusDistribution(nil)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Salud_2", sanitize("Salud/2"))
	assert.Equal(t, "Educaci_n_0", sanitize("Educación_0"))
	assert.Equal(t, "a-b_c", sanitize("a-b_c"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abc…", truncate("abcdef", 4))
}
