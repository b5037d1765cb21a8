package anomaly

import (
	"math"
	"testing"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

func createTestSeries(values []float64) analytics.Series {
	s := make(analytics.Series, len(values))
	for i, v := range values {
		s[i] = analytics.Observation{
			Period: analytics.Calendar[i%12],
			Value:  analytics.Float(v),
		}
	}
	return s
}

func TestDetect_Spike(t *testing.T) {
	values := []float64{10, 10, 10, 10, 10, 10, 100, 10, 10, 10, 10, 10}
	results := Detect(createTestSeries(values), DefaultConfig())

	if len(results) != 1 {
		t.Fatalf("Expected exactly one anomaly, got %d", len(results))
	}

	a := results[0]
	if a.Period != "July" {
		t.Errorf("Expected anomaly in July, got %s", a.Period)
	}
	if a.Direction != High {
		t.Errorf("Expected direction High, got %s", a.Direction)
	}
	if a.ZScore <= 2.5 {
		t.Errorf("Expected z-score above 2.5, got %f", a.ZScore)
	}
	// mean is 17.5
	if math.Abs(a.PctDeviation-471.428571) > 0.001 {
		t.Errorf("Expected deviation ~471.43%%, got %f", a.PctDeviation)
	}
}

func TestDetect_Drop(t *testing.T) {
	values := []float64{50, 50, 50, 50, 50, 50, 50, 50, 50, 0}
	results := Detect(createTestSeries(values), DefaultConfig())

	if len(results) != 1 {
		t.Fatalf("Expected exactly one anomaly, got %d", len(results))
	}
	if results[0].Direction != Low {
		t.Errorf("Expected direction Low, got %s", results[0].Direction)
	}
	if results[0].ZScore >= -2.5 {
		t.Errorf("Expected z-score below -2.5, got %f", results[0].ZScore)
	}
}

func TestDetect_SmallSampleCannotReachThreshold(t *testing.T) {
	// 13 is more than 3 stdevs above the other four, but with five values
	// the largest reachable |z| is 4/sqrt(5)
	values := []float64{10, 11, 9, 10, 13}
	results := Detect(createTestSeries(values), DefaultConfig())

	if len(results) != 0 {
		t.Errorf("Expected no anomalies for five values, got %d", len(results))
	}

	config := DefaultConfig()
	config.Threshold = 1.5
	results = Detect(createTestSeries(values), config)
	if len(results) != 1 || results[0].Direction != High {
		t.Errorf("Expected one High anomaly with a 1.5 threshold, got %+v", results)
	}
}

func TestDetect_NoAnomalies(t *testing.T) {
	values := []float64{10, 11, 10, 12, 11, 10, 11, 11, 10, 12}
	results := Detect(createTestSeries(values), DefaultConfig())

	if len(results) != 0 {
		t.Errorf("Expected no anomalies in normal data, got %d", len(results))
	}
}

func TestDetect_Flatline(t *testing.T) {
	values := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}
	results := Detect(createTestSeries(values), DefaultConfig())

	if results == nil || len(results) != 0 {
		t.Errorf("Expected an empty, non-nil result for zero variance, got %v", results)
	}
}

func TestDetect_InsufficientData(t *testing.T) {
	s := analytics.Series{
		{Period: "Enero", Value: analytics.Float(10)},
		{Period: "Febrero", Value: analytics.Float(500)},
		{Period: "Marzo"},
	}

	results := Detect(s, DefaultConfig())
	if len(results) != 0 {
		t.Errorf("Expected no results with insufficient data, got %d", len(results))
	}
}

func TestDetect_SeriesOrder(t *testing.T) {
	// Input order is not chronological; output must follow it
	s := analytics.Series{}
	for _, p := range []string{"Diciembre", "Enero", "Noviembre", "Febrero", "Octubre", "Marzo", "Septiembre", "Abril", "Agosto", "Mayo", "Julio", "Junio"} {
		s = append(s, analytics.Observation{Period: p, Value: analytics.Float(50)})
	}
	s[0].Value = analytics.Float(200)
	s[11].Value = analytics.Float(-100)

	config := DefaultConfig()
	config.Threshold = 2.0
	results := Detect(s, config)

	if len(results) != 2 {
		t.Fatalf("Expected two anomalies, got %d", len(results))
	}
	if results[0].Period != "Diciembre" || results[1].Period != "Junio" {
		t.Errorf("Expected series order Diciembre, Junio; got %s, %s", results[0].Period, results[1].Period)
	}
}

func TestDetect_ZeroMeanDeviation(t *testing.T) {
	values := []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 60, -60}
	config := DefaultConfig()
	config.Threshold = 2.0

	results := Detect(createTestSeries(values), config)
	if len(results) != 2 {
		t.Fatalf("Expected two anomalies, got %d", len(results))
	}
	for _, r := range results {
		if r.PctDeviation != 0 {
			t.Errorf("Expected zero deviation for zero mean, got %f", r.PctDeviation)
		}
	}
}

func TestCalculateZScore(t *testing.T) {
	if z := CalculateZScore(14, 10, 2); z != 2 {
		t.Errorf("Expected z-score 2, got %f", z)
	}
	if z := CalculateZScore(14, 10, 0); z != 0 {
		t.Errorf("Expected z-score 0 for zero stdDev, got %f", z)
	}
}

func TestConfigFromThresholds(t *testing.T) {
	th := analytics.DefaultThresholds()
	th.ZScore = 3
	th.MinAnomalySample = 5

	config := ConfigFromThresholds(th)
	if config.Threshold != 3 || config.MinDataPoints != 5 {
		t.Errorf("Unexpected config %+v", config)
	}
}
