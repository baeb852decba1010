package oxygen

// Typical-range bounds for the confidence heuristic. A value outside its
// bound counts as one violation; the count maps to a label.
const (
	typicalPopulationMin        = 1000
	typicalPopulationMax        = 20_000_000
	typicalAQIMax               = 400
	typicalSoilQualityMin       = 20
	typicalDisasterFrequencyMax = 9
)

// DetermineConfidenceLevel scores data plausibility by counting how many
// inputs fall outside typical real-world ranges. 0 violations is "high",
// 1-2 is "medium", 3-4 is "low". This is an advisory label, not a
// statistical confidence interval; it never alters the numeric result.
func DetermineConfidenceLevel(data DistrictEnvironmentalData) ConfidenceLevel {
	violations := 0

	if data.Population < typicalPopulationMin || data.Population > typicalPopulationMax {
		violations++
	}
	if data.AQI > typicalAQIMax {
		violations++
	}
	if data.SoilQuality < typicalSoilQualityMin {
		violations++
	}
	if data.DisasterFrequency > typicalDisasterFrequencyMax {
		violations++
	}

	switch {
	case violations == 0:
		return ConfidenceHigh
	case violations <= 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
