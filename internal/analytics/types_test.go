package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(pairs ...interface{}) Series {
	s := make(Series, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		o := Observation{Period: pairs[i].(string)}
		if v, ok := pairs[i+1].(float64); ok {
			o.Value = Float(v)
		}
		s = append(s, o)
	}
	return s
}

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		label string
		want  int
		ok    bool
	}{
		{"January", 0, true},
		{"enero", 0, true},
		{" Diciembre ", 11, true},
		{"SEPTIEMBRE", 8, true},
		{"Setiembre", 8, true},
		{"2023-Q1", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			idx, ok := MonthIndex(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, idx)
			}
		})
	}
}

func TestSeries_PresentSkipsNilAndNaN(t *testing.T) {
	s := series("Enero", 10.0, "Febrero", nil, "Marzo", math.NaN(), "Abril", 20.0)

	assert.Equal(t, []float64{10, 20}, s.Values())
	assert.Len(t, s.Present(), 2)
	assert.Equal(t, 4, s.Len())
}

func TestSeries_ChronologicalIgnoresInputOrder(t *testing.T) {
	s := series("Julio", 3.0, "Enero", 1.0, "Abril", 2.0, "2022", 99.0)

	assert.True(t, s.IsCalendar())
	assert.Equal(t, []float64{1, 2, 3}, s.Chronological())
	assert.Equal(t, []int{0, 3, 6}, s.Positions())
}

func TestSeries_Latest(t *testing.T) {
	v, ok := series("Enero", 1.0, "Marzo", 3.0, "Diciembre", nil).Latest()
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = series("2022", 1.0).Latest()
	assert.False(t, ok)
}

func TestSeries_DisplayOrder(t *testing.T) {
	calendar := series("Marzo", 3.0, "Enero", 1.0, "Febrero", nil)
	got := calendar.DisplayOrder()
	require.Len(t, got, 2)
	assert.Equal(t, "Enero", got[0].Period)
	assert.Equal(t, "Marzo", got[1].Period)

	battery := series("2024", 4.0, "2022", 2.0, "2023", 3.0)
	assert.False(t, battery.IsCalendar())
	got = battery.DisplayOrder()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"2022", "2023", "2024"}, []string{got[0].Period, got[1].Period, got[2].Period})
}

func TestSeries_Validate(t *testing.T) {
	assert.NoError(t, series("Enero", 1.0, "Febrero", nil).Validate())
	assert.Error(t, series("Enero", 1.0, "January", 2.0).Validate())
	assert.Error(t, series("2022", 1.0, "2022", 2.0).Validate())
	assert.Error(t, series("", 1.0).Validate())
	assert.Error(t, series("Enero", math.Inf(1)).Validate())
}

func TestMeanStdDev(t *testing.T) {
	mean, stdDev := MeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-9)
	assert.InDelta(t, 2.0, stdDev, 1e-9)

	mean, stdDev = MeanStdDev(nil)
	assert.Zero(t, mean)
	assert.Zero(t, stdDev)
}

func TestCoefficientOfVariation(t *testing.T) {
	assert.InDelta(t, 40.0, CoefficientOfVariation(5, 2), 1e-9)
	assert.Zero(t, CoefficientOfVariation(0, 3))
}

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, DefaultThresholds().Validate())

	bad := DefaultThresholds()
	bad.MagnitudeYellow = 90
	assert.Error(t, bad.Validate())

	bad = DefaultThresholds()
	bad.InvertedCriticalMultiplier = 0.9
	assert.Error(t, bad.Validate())

	bad = DefaultThresholds()
	bad.ZScore = 0
	assert.Error(t, bad.Validate())
}
