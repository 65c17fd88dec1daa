package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		expected   float64
		tolerance  float64
	}{
		{
			name: "Same point is zero",
			lat1: 8.5088, lon1: 76.9514,
			lat2: 8.5088, lon2: 76.9514,
			expected:  0,
			tolerance: 0,
		},
		{
			name: "Known points in Trivandrum",
			lat1: 8.5088, lon1: 76.9514,
			lat2: 8.4900, lon2: 76.9515,
			expected:  2.09,
			tolerance: 0.011,
		},
		{
			name: "Equator quarter turn",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 90,
			expected:  10007.5,
			tolerance: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, d, tt.tolerance)
			assert.GreaterOrEqual(t, d, 0.0)
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	d1 := Distance(8.5088, 76.9514, 8.4900, 76.9515)
	d2 := Distance(8.4900, 76.9515, 8.5088, 76.9514)
	assert.Equal(t, d1, d2)
}

func TestDistanceNaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Distance(math.NaN(), 0, 0, 0)))
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name     string
		km       float64
		expected string
	}{
		{name: "Meters under one km", km: 0.85, expected: "850 m"},
		{name: "Kilometers with one decimal", km: 2.09, expected: "2.1 km"},
		{name: "Exact kilometer", km: 1.0, expected: "1.0 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDistance(tt.km))
		})
	}
}

func TestETA(t *testing.T) {
	tests := []struct {
		name     string
		km       float64
		expected string
	}{
		{name: "Short walk", km: 0.5, expected: "6 min"},
		{name: "Under an hour", km: 2.0, expected: "24 min"},
		{name: "Exactly hours", km: 5.0, expected: "1 h"},
		{name: "Hours and minutes", km: 6.0, expected: "1 h 12 min"},
		{name: "Never below one minute", km: 0.001, expected: "1 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ETA(tt.km))
		})
	}
}

func TestETAMonotonic(t *testing.T) {
	prev := 0.0
	for _, km := range []float64{0.1, 0.5, 1, 2, 5, 10, 25} {
		minutes := math.Ceil(km * walkingPaceMinPerKm)
		assert.Greater(t, minutes, prev)
		prev = minutes
	}
}
