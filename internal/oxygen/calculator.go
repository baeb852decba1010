package oxygen

import "math"

// Calculation constants.
const (
	// HumanO2LitersPerDay is the average adult oxygen consumption.
	HumanO2LitersPerDay = 550

	// LitersToKgO2 converts liters of oxygen to kilograms at standard
	// temperature and pressure.
	LitersToKgO2 = 1.429 / 1000

	// DaysPerYear converts daily consumption to annual.
	DaysPerYear = 365

	// BaseTreeO2SupplyKgPerYear is the annual oxygen production of a
	// mature tree under nominal soil conditions.
	BaseTreeO2SupplyKgPerYear = 110

	// TreesPerHectare is the typical plantation density.
	TreesPerHectare = 400

	// MinSoilTreeMultiplier floors the soil-to-yield adjustment.
	MinSoilTreeMultiplier = 0.70
)

// assumptions describes the constants and the conservative-estimate policy
// behind every result. Static across all calls.
var assumptions = []string{
	"Average human O2 consumption: 550 L/day",
	"Mature tree O2 production: 110 kg/year",
	"Calculations assume no existing tree coverage (conservative estimate)",
	"Tree plantation density: 400 trees per hectare",
	"O2 demand penalties based on AQI, soil quality, and disaster frequency",
}

// dataSources cites the research behind the constants. Static across all
// calls.
var dataSources = []string{
	"WHO: Human oxygen consumption standards",
	"USDA Forest Service: Tree oxygen production research",
	"EPA: Air Quality Index categories",
}

// Calculate computes the annual oxygen deficit for a district and the
// number of trees required to close it. It is a pure function of its
// input: no I/O, no shared state, bounded input-independent runtime.
// Given in-contract input it cannot fail; the soil multiplier floor
// guarantees a positive per-tree yield, so the trees-required division is
// always defined.
func Calculate(data DistrictEnvironmentalData) OxygenCalculationResult {
	// Raw human demand, liters then kilograms per year.
	litersPerYear := float64(data.Population) * HumanO2LitersPerDay * DaysPerYear
	kgPerYear := litersPerYear * LitersToKgO2

	// Each stressor independently amplifies demand, so the factors
	// compose multiplicatively.
	aqiFactor := AQIPenaltyFactor(data.AQI)
	soilFactor := SoilDegradationFactor(data.SoilQuality)
	disasterFactor := DisasterLossFactor(data.DisasterFrequency)
	totalPenalty := aqiFactor * soilFactor * disasterFactor

	adjustedDemandKg := kgPerYear * totalPenalty

	// Per-tree supply scaled down for degraded soil.
	soilMultiplier := SoilTreeMultiplier(data.SoilQuality)
	perTreeSupplyKg := BaseTreeO2SupplyKgPerYear * soilMultiplier

	// Deficit equals the full adjusted demand: zero existing tree
	// coverage is assumed, a deliberately conservative worst case.
	deficitKg := adjustedDemandKg

	treesRequired := int64(math.Ceil(deficitKg / perTreeSupplyKg))
	hectares := float64(treesRequired) / TreesPerHectare

	breakdown := FormulaBreakdown{
		HumanO2DemandLiters:      litersPerYear,
		HumanO2DemandKg:          kgPerYear,
		AQIPenaltyFactor:         aqiFactor,
		SoilDegradationFactor:    soilFactor,
		DisasterLossFactor:       disasterFactor,
		TotalPenalty:             totalPenalty,
		AdjustedO2DemandKg:       adjustedDemandKg,
		PerTreeO2SupplyKg:        BaseTreeO2SupplyKgPerYear,
		SoilAdjustedTreeSupplyKg: perTreeSupplyKg,
	}

	// Rounding happens only here, at assembly, so it never propagates
	// into the arithmetic above.
	return OxygenCalculationResult{
		DistrictName:                   data.DistrictName,
		Population:                     data.Population,
		HumanO2DemandKgPerYear:         round2(kgPerYear),
		PenaltyAdjustedDemandKgPerYear: round2(adjustedDemandKg),
		PerTreeO2SupplyKgPerYear:       round2(perTreeSupplyKg),
		OxygenDeficitKgPerYear:         round2(deficitKg),
		TreesRequired:                  treesRequired,
		TreesRequiredHectares:          round2(hectares),
		FormulaBreakdown:               breakdown,
		Assumptions:                    assumptions,
		ConfidenceLevel:                DetermineConfidenceLevel(data),
		DataSources:                    dataSources,
	}
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
