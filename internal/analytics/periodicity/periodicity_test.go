package periodicity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

func monthsSeries(months ...int) analytics.Series {
	s := make(analytics.Series, 0, len(months))
	for _, m := range months {
		s = append(s, analytics.Observation{Period: analytics.Calendar[m], Value: analytics.Float(50)})
	}
	return s
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		series analytics.Series
		want   Periodicity
	}{
		{"empty", analytics.Series{}, Indeterminate},
		{"all missing", analytics.Series{{Period: "Enero"}, {Period: "Febrero", Value: analytics.Float(math.NaN())}}, Indeterminate},
		{"all twelve months", monthsSeries(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11), Monthly},
		{"every other month", monthsSeries(1, 3, 5, 7, 9, 11), Bimonthly},
		{"quarterly", monthsSeries(0, 3, 6, 9), Quarterly},
		{"four-monthly", monthsSeries(3, 7, 11), FourMonthly},
		{"semiannual", monthsSeries(5, 11), Semiannual},
		{"wide gap", monthsSeries(0, 11), Annual},
		{"single month", monthsSeries(11), Annual},
		{"only period labels", analytics.Series{{Period: "2022", Value: analytics.Float(1)}, {Period: "2023", Value: analytics.Float(2)}}, Indeterminate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.series))
		})
	}
}

func TestClassify_GapBandBoundaries(t *testing.T) {
	tests := []struct {
		gap  float64
		want Periodicity
	}{
		{1.0, Monthly},
		{1.5, Monthly},
		{2.0, Bimonthly},
		{2.5, Bimonthly},
		{3.5, Quarterly},
		{4.0, FourMonthly},
		{5.0, FourMonthly},
		{5.5, Semiannual},
		{7.0, Semiannual},
		{7.5, Annual},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fromGap(tt.gap), "gap %v", tt.gap)
	}
}

func TestClassify_SinglePositionCountsOtherLabels(t *testing.T) {
	s := analytics.Series{
		{Period: "Marzo", Value: analytics.Float(10)},
		{Period: "2023", Value: analytics.Float(11)},
	}
	assert.Equal(t, Semiannual, Classify(s))
}

func TestClassify_Deterministic(t *testing.T) {
	s := monthsSeries(0, 2, 5, 9)
	first := Classify(s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(s))
	}
}

func TestFromCount(t *testing.T) {
	assert.Equal(t, Monthly, fromCount(12))
	assert.Equal(t, Bimonthly, fromCount(6))
	assert.Equal(t, Quarterly, fromCount(4))
	assert.Equal(t, FourMonthly, fromCount(3))
	assert.Equal(t, Semiannual, fromCount(2))
	assert.Equal(t, Annual, fromCount(1))
	assert.Equal(t, Indeterminate, fromCount(5))
}
