package oxygen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vayura/oxygen-calculator/internal/oxygen"
)

func TestCalculate_ReferenceDistrict(t *testing.T) {
	data := oxygen.DistrictEnvironmentalData{
		DistrictName:      "Pune",
		Population:        1_000_000,
		AQI:               75,
		SoilQuality:       50,
		DisasterFrequency: 1,
	}

	result := oxygen.Calculate(data)

	// Raw demand: 1,000,000 × 550 L/day × 365 days = 200,750,000,000 L/year.
	assert.Equal(t, 200_750_000_000.0, result.FormulaBreakdown.HumanO2DemandLiters)

	wantKg := 200_750_000_000.0 * oxygen.LitersToKgO2
	assert.Equal(t, wantKg, result.FormulaBreakdown.HumanO2DemandKg)

	// Penalty factors: AQI 75 → 1.05, soil 50 → 1.25, disasters 1 → 1.05.
	assert.Equal(t, 1.05, result.FormulaBreakdown.AQIPenaltyFactor)
	assert.Equal(t, 1.25, result.FormulaBreakdown.SoilDegradationFactor)
	assert.Equal(t, 1.05, result.FormulaBreakdown.DisasterLossFactor)
	assert.InDelta(t, 1.378125, result.FormulaBreakdown.TotalPenalty, 1e-12)

	// Soil 50 hits the 0.70 multiplier floor: 110 × 0.70 = 77 kg/year.
	assert.Equal(t, 77.0, result.PerTreeO2SupplyKgPerYear)

	wantAdjusted := wantKg * 1.05 * 1.25 * 1.05
	assert.InDelta(t, wantAdjusted, result.FormulaBreakdown.AdjustedO2DemandKg, 1e-3)

	wantTrees := int64(math.Ceil(result.FormulaBreakdown.AdjustedO2DemandKg / 77.0))
	assert.Equal(t, wantTrees, result.TreesRequired)

	assert.Equal(t, oxygen.ConfidenceHigh, result.ConfidenceLevel)
	assert.Equal(t, "Pune", result.DistrictName)
	assert.Equal(t, int64(1_000_000), result.Population)
}

func TestCalculate_DeficitEqualsAdjustedDemand(t *testing.T) {
	// Zero existing tree coverage is assumed, so the deficit is the full
	// penalty-adjusted demand.
	result := oxygen.Calculate(oxygen.DistrictEnvironmentalData{
		DistrictName:      "Nagpur",
		Population:        250_000,
		AQI:               180,
		SoilQuality:       65,
		DisasterFrequency: 4,
	})

	assert.Equal(t, result.PenaltyAdjustedDemandKgPerYear, result.OxygenDeficitKgPerYear)
}

func TestCalculate_Properties(t *testing.T) {
	inputs := []oxygen.DistrictEnvironmentalData{
		{DistrictName: "a", Population: 1, AQI: 0, SoilQuality: 100, DisasterFrequency: 0},
		{DistrictName: "b", Population: 5_000, AQI: 500, SoilQuality: 0, DisasterFrequency: 12},
		{DistrictName: "c", Population: 19_999_999, AQI: 320, SoilQuality: 33, DisasterFrequency: 7.5},
		{DistrictName: "d", Population: 2_500_000, AQI: 42, SoilQuality: 81, DisasterFrequency: 2},
	}

	for _, data := range inputs {
		result := oxygen.Calculate(data)

		// All penalty factors are >= 1, so adjusted demand never drops
		// below raw demand.
		assert.GreaterOrEqual(t,
			result.PenaltyAdjustedDemandKgPerYear,
			result.HumanO2DemandKgPerYear,
			"district %s", data.DistrictName)

		require.GreaterOrEqual(t, result.TreesRequired, int64(0))

		// Hectares is derived exactly from the tree count at fixed
		// plantation density (modulo 2-decimal rounding at assembly).
		wantHectares := math.Round(float64(result.TreesRequired)/oxygen.TreesPerHectare*100) / 100
		assert.Equal(t, wantHectares, result.TreesRequiredHectares)

		// The per-tree yield floor makes the supply strictly positive.
		assert.GreaterOrEqual(t,
			result.FormulaBreakdown.SoilAdjustedTreeSupplyKg,
			oxygen.MinSoilTreeMultiplier*oxygen.BaseTreeO2SupplyKgPerYear)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	data := oxygen.DistrictEnvironmentalData{
		DistrictName:      "Indore",
		Population:        900_000,
		AQI:               140,
		SoilQuality:       55,
		DisasterFrequency: 3,
	}

	first := oxygen.Calculate(data)
	second := oxygen.Calculate(data)
	assert.Equal(t, first, second)
}

func TestCalculate_RoundingOnlyAtAssembly(t *testing.T) {
	result := oxygen.Calculate(oxygen.DistrictEnvironmentalData{
		DistrictName:      "Surat",
		Population:        123_457,
		AQI:               88,
		SoilQuality:       47,
		DisasterFrequency: 6,
	})

	// The tree count is derived from the unrounded deficit, not the
	// rounded top-level value.
	wantTrees := int64(math.Ceil(result.FormulaBreakdown.AdjustedO2DemandKg /
		result.FormulaBreakdown.SoilAdjustedTreeSupplyKg))
	assert.Equal(t, wantTrees, result.TreesRequired)

	// Top-level quantities carry at most 2 decimals.
	for _, v := range []float64{
		result.HumanO2DemandKgPerYear,
		result.PenaltyAdjustedDemandKgPerYear,
		result.PerTreeO2SupplyKgPerYear,
		result.OxygenDeficitKgPerYear,
		result.TreesRequiredHectares,
	} {
		assert.Equal(t, math.Round(v*100)/100, v)
	}
}
