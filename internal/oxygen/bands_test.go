package oxygen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vayura/oxygen-calculator/internal/oxygen"
)

func TestAQIPenaltyFactor(t *testing.T) {
	tests := []struct {
		name string
		aqi  float64
		want float64
	}{
		{"good lower edge", 0, 1.00},
		{"good upper boundary", 50, 1.00},
		{"moderate just past boundary", 51, 1.05},
		{"moderate", 75, 1.05},
		{"moderate upper boundary", 100, 1.05},
		{"unhealthy for sensitive", 150, 1.15},
		{"unhealthy", 200, 1.30},
		{"very unhealthy", 300, 1.50},
		{"hazardous", 301, 1.75},
		{"beyond scale", 999, 1.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, oxygen.AQIPenaltyFactor(tt.aqi))
		})
	}
}

func TestSoilDegradationFactor(t *testing.T) {
	tests := []struct {
		name        string
		soilQuality float64
		want        float64
	}{
		{"excellent", 100, 1.00},
		{"excellent lower boundary", 80, 1.00},
		{"good just below boundary", 79, 1.10},
		{"good lower boundary", 60, 1.10},
		{"moderate", 40, 1.25},
		{"poor", 20, 1.40},
		{"very poor", 19, 1.60},
		{"barren", 0, 1.60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, oxygen.SoilDegradationFactor(tt.soilQuality))
		})
	}
}

func TestDisasterLossFactor(t *testing.T) {
	tests := []struct {
		name      string
		frequency float64
		want      float64
	}{
		{"low", 0, 1.05},
		{"low upper boundary", 2, 1.05},
		{"moderate", 3, 1.15},
		{"moderate upper boundary", 5, 1.15},
		{"high upper boundary", 8, 1.30},
		{"very high", 8.1, 1.50},
		{"extreme", 50, 1.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, oxygen.DisasterLossFactor(tt.frequency))
		})
	}
}

func TestSoilTreeMultiplier(t *testing.T) {
	// Linear above the floor.
	assert.Equal(t, 1.0, oxygen.SoilTreeMultiplier(100))
	assert.Equal(t, 0.85, oxygen.SoilTreeMultiplier(85))

	// Floored at 0.70 regardless of how low soil quality falls.
	assert.Equal(t, 0.70, oxygen.SoilTreeMultiplier(70))
	assert.Equal(t, 0.70, oxygen.SoilTreeMultiplier(50))
	assert.Equal(t, 0.70, oxygen.SoilTreeMultiplier(0))
}
