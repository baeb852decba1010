// Package history records completed oxygen calculations for later review.
// Recording is best-effort and lives entirely in the API layer; the
// calculation engine has no dependency on it.
package history

import "time"

// Record is one completed calculation.
type Record struct {
	ID                     string    `json:"id"`
	DistrictName           string    `json:"district_name"`
	Population             int64     `json:"population"`
	AQI                    float64   `json:"aqi"`
	SoilQuality            float64   `json:"soil_quality"`
	DisasterFrequency      float64   `json:"disaster_frequency"`
	OxygenDeficitKgPerYear float64   `json:"oxygen_deficit_kg_per_year"`
	TreesRequired          int64     `json:"trees_required"`
	ConfidenceLevel        string    `json:"confidence_level"`
	CreatedAt              time.Time `json:"created_at"`
}

// ListOptions controls history queries.
type ListOptions struct {
	// District filters by district name when non-empty.
	District string

	// Limit caps the number of records returned. Defaults to 50.
	Limit int
}
