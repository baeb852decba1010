// Package oxygen computes district-level oxygen demand, deficit, and
// reforestation requirements from environmental measurements.
package oxygen

// ConfidenceLevel is a heuristic data-quality label attached to a result.
// It reflects how many inputs fall outside typical real-world ranges and
// never alters the numeric result.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// DistrictEnvironmentalData is the input record for a calculation.
// All numeric fields must satisfy their stated bounds before entering the
// engine; validation is the caller's responsibility.
type DistrictEnvironmentalData struct {
	DistrictName string `json:"district_name" validate:"required"`

	// Population is the resident count, must be positive.
	Population int64 `json:"population" validate:"required,gt=0"`

	// AQI is the Air Quality Index, valid range [0, 500].
	AQI float64 `json:"aqi" validate:"gte=0,lte=500"`

	// SoilQuality is a soil quality index, valid range [0, 100].
	SoilQuality float64 `json:"soil_quality" validate:"gte=0,lte=100"`

	// DisasterFrequency is a non-negative disaster frequency score,
	// unbounded above.
	DisasterFrequency float64 `json:"disaster_frequency" validate:"gte=0"`
}

// FormulaBreakdown records every intermediate quantity of the pipeline.
// Values are unrounded; it is purely explanatory and never consumed
// downstream.
type FormulaBreakdown struct {
	HumanO2DemandLiters      float64 `json:"human_o2_demand_liters"`
	HumanO2DemandKg          float64 `json:"human_o2_demand_kg"`
	AQIPenaltyFactor         float64 `json:"aqi_penalty_factor"`
	SoilDegradationFactor    float64 `json:"soil_degradation_factor"`
	DisasterLossFactor       float64 `json:"disaster_loss_factor"`
	TotalPenalty             float64 `json:"total_penalty"`
	AdjustedO2DemandKg       float64 `json:"adjusted_o2_demand_kg"`
	PerTreeO2SupplyKg        float64 `json:"per_tree_o2_supply_kg"`
	SoilAdjustedTreeSupplyKg float64 `json:"soil_adjusted_tree_supply_kg"`
}

// OxygenCalculationResult is the final output record of a calculation.
// Top-level kilogram quantities and hectares are rounded to 2 decimals at
// assembly; the embedded breakdown carries the unrounded chain.
type OxygenCalculationResult struct {
	DistrictName string `json:"district_name"`
	Population   int64  `json:"population"`

	HumanO2DemandKgPerYear         float64 `json:"human_o2_demand_kg_per_year"`
	PenaltyAdjustedDemandKgPerYear float64 `json:"penalty_adjusted_demand_kg_per_year"`
	PerTreeO2SupplyKgPerYear       float64 `json:"per_tree_o2_supply_kg_per_year"`
	OxygenDeficitKgPerYear         float64 `json:"oxygen_deficit_kg_per_year"`

	TreesRequired         int64   `json:"trees_required"`
	TreesRequiredHectares float64 `json:"trees_required_hectares"`

	FormulaBreakdown FormulaBreakdown `json:"formula_breakdown"`
	Assumptions      []string         `json:"assumptions"`
	ConfidenceLevel  ConfidenceLevel  `json:"confidence_level"`
	DataSources      []string         `json:"data_sources"`
}
