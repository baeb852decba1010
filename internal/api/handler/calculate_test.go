package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vayura/oxygen-calculator/internal/oxygen"
)

func validData() oxygen.DistrictEnvironmentalData {
	return oxygen.DistrictEnvironmentalData{
		DistrictName:      "Pune",
		Population:        500_000,
		AQI:               120,
		SoilQuality:       60,
		DisasterFrequency: 3,
	}
}

func TestValidateInput(t *testing.T) {
	assert.Empty(t, validateInput(validData()))

	tests := []struct {
		name   string
		mutate func(*oxygen.DistrictEnvironmentalData)
		field  string
	}{
		{"empty district name", func(d *oxygen.DistrictEnvironmentalData) { d.DistrictName = "" }, "district_name"},
		{"zero population", func(d *oxygen.DistrictEnvironmentalData) { d.Population = 0 }, "population"},
		{"negative population", func(d *oxygen.DistrictEnvironmentalData) { d.Population = -5 }, "population"},
		{"negative aqi", func(d *oxygen.DistrictEnvironmentalData) { d.AQI = -1 }, "aqi"},
		{"aqi above scale", func(d *oxygen.DistrictEnvironmentalData) { d.AQI = 500.1 }, "aqi"},
		{"soil above scale", func(d *oxygen.DistrictEnvironmentalData) { d.SoilQuality = 101 }, "soil_quality"},
		{"negative disasters", func(d *oxygen.DistrictEnvironmentalData) { d.DisasterFrequency = -2 }, "disaster_frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validData()
			tt.mutate(&data)

			fieldErrors := validateInput(data)
			assert.Len(t, fieldErrors, 1)
			assert.Equal(t, tt.field, fieldErrors[0].Field)
		})
	}
}

// Bounds are inclusive; edge values are valid.
func TestValidateInput_Boundaries(t *testing.T) {
	data := validData()
	data.AQI = 0
	data.SoilQuality = 0
	data.DisasterFrequency = 0
	data.Population = 1
	assert.Empty(t, validateInput(data))

	data.AQI = 500
	data.SoilQuality = 100
	assert.Empty(t, validateInput(data))
}
