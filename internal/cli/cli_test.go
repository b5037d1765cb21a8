package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const recordsJSON = `[
	{"id": "1", "name": "Cobertura", "target": 90,
	 "values": [{"period": "Enero", "value": 80}, {"period": "Febrero", "value": 85},
	            {"period": "Marzo", "value": 92}, {"period": "Abril", "value": 95}]},
	{"id": "2", "name": "Oportunidad", "target": 80, "critical_level": 60,
	 "values": [{"period": "Enero", "value": 40}, {"period": "Febrero", "value": 35}]},
	{"id": "3", "name": "Sin datos", "values": [{"period": "Enero", "value": null}]},
	{"id": "", "name": "Sin código", "values": []}
]`

func writeRecords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(recordsJSON), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := run(t, "analyze", "--input", writeRecords(t))
	require.NoError(t, err)

	var export struct {
		Meta struct {
			RunID string `json:"run_id"`
		} `json:"meta"`
		Analyses []struct {
			IndicatorID string `json:"indicator_id"`
			Status      string `json:"status"`
			Trend       string `json:"trend"`
		} `json:"analyses"`
		Failures []struct {
			Index int    `json:"index"`
			Code  string `json:"code"`
		} `json:"failures"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &export))

	assert.NotEmpty(t, export.Meta.RunID)
	require.Len(t, export.Analyses, 3)
	assert.Equal(t, "Green", export.Analyses[0].Status)
	assert.Equal(t, "Red", export.Analyses[1].Status)
	assert.Equal(t, "Gray", export.Analyses[2].Status)

	require.Len(t, export.Failures, 1)
	assert.Equal(t, 3, export.Failures[0].Index)
	assert.Equal(t, "INVALID_RECORD", export.Failures[0].Code)
}

func TestAnalyze_YAMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	_, err := run(t, "analyze", "--input", writeRecords(t), "--format", "yaml", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var export map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &export))
	assert.Contains(t, export, "meta")
	assert.Len(t, export["analyses"], 3)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := run(t, "analyze")
	assert.Error(t, err)

	_, err = run(t, "analyze", "--input", writeRecords(t), "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")

	_, err = run(t, "analyze", "--input", filepath.Join(t.TempDir(), "board.csv"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = run(t, "--log-level", "verbose", "analyze", "--input", writeRecords(t))
	assert.ErrorContains(t, err, "log-level")
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "report", "--input", writeRecords(t), "--out-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ReportPDF), strings.TrimSpace(out))

	for _, name := range []string{ReportPDF, ReportHTML, ReportMarkdown, AnalysesJSON} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	pdf, err := api.ReadContextFile(filepath.Join(dir, ReportPDF))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pdf.PageCount, 2)

	md, err := os.ReadFile(filepath.Join(dir, ReportMarkdown))
	require.NoError(t, err)
	assert.Contains(t, string(md), "| Oportunidad |")

	for _, chart := range []string{"series_1.png", "series_2.png", "comparison.png", "status.png"} {
		assert.FileExists(t, filepath.Join(dir, "charts", chart))
	}
	assert.NoFileExists(t, filepath.Join(dir, "charts", "series_3.png"))
}

func TestReport_WithConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
report:
  title: Informe de prueba
  charts: false
output:
  dir: `+filepath.Join(dir, "out")+`
`), 0644))

	_, err := run(t, "--config", cfgPath, "report", "--input", writeRecords(t))
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(dir, "out", ReportHTML))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<title>Informe de prueba</title>")
	assert.NoFileExists(t, filepath.Join(dir, "out", "charts", "series_1.png"))
}

func TestAnalyze_NaNTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: "1"
  name: Satisfacción
  target: .nan
  values:
    - period: Enero
      value: 70
    - period: Febrero
      value: 85
`), 0644))

	out, err := run(t, "analyze", "--input", path, "--format", "json")
	require.NoError(t, err)

	var export struct {
		Analyses []map[string]interface{} `json:"analyses"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &export))
	require.Len(t, export.Analyses, 1)
	assert.NotContains(t, export.Analyses[0], "target")
	assert.Equal(t, "Green", export.Analyses[0]["status"])
}

type failingCloser struct {
	bytes.Buffer
}

func (failingCloser) Close() error {
	return errors.New("disk full")
}

func TestWriteAndClose_ReportsCloseError(t *testing.T) {
	err := writeAndClose(&failingCloser{}, "out.json", "json", map[string]int{"total": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to close out.json")
	assert.Contains(t, err.Error(), "disk full")
}

func TestAnalyze_OutInMissingDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "out.json")
	_, err := run(t, "analyze", "--input", writeRecords(t), "--out", out)
	assert.ErrorContains(t, err, "failed to create")
}
