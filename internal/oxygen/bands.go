package oxygen

// band pairs a threshold with the penalty factor for values on its side of
// the boundary. Bands are ordered and non-overlapping; the scan direction
// determines whether the threshold is an inclusive upper or lower bound.
type band struct {
	threshold float64
	factor    float64
}

// aqiPenaltyBands maps AQI to a demand penalty. Scanned low-to-high; a
// value selects the first band with value <= threshold. Higher AQI means
// more health stress and higher effective oxygen demand.
var aqiPenaltyBands = []band{
	{threshold: 50, factor: 1.00},  // good
	{threshold: 100, factor: 1.05}, // moderate
	{threshold: 150, factor: 1.15}, // unhealthy for sensitive groups
	{threshold: 200, factor: 1.30}, // unhealthy
	{threshold: 300, factor: 1.50}, // very unhealthy
}

// aqiHazardousFactor applies above the last AQI band.
const aqiHazardousFactor = 1.75

// soilDegradationBands maps soil quality to a demand penalty. Scanned
// high-to-low; a value selects the first band with value >= threshold.
// Poor soil means less natural vegetation and higher effective demand.
var soilDegradationBands = []band{
	{threshold: 80, factor: 1.00}, // excellent
	{threshold: 60, factor: 1.10}, // good
	{threshold: 40, factor: 1.25}, // moderate
	{threshold: 20, factor: 1.40}, // poor
}

// soilVeryPoorFactor applies below the last soil band.
const soilVeryPoorFactor = 1.60

// disasterLossBands maps disaster frequency to a demand penalty. Scanned
// low-to-high; a value selects the first band with value <= threshold.
// Frequent disasters mean vegetation loss and reduced oxygen sources.
var disasterLossBands = []band{
	{threshold: 2, factor: 1.05}, // low
	{threshold: 5, factor: 1.15}, // moderate
	{threshold: 8, factor: 1.30}, // high
}

// disasterVeryHighFactor applies above the last disaster band.
const disasterVeryHighFactor = 1.50

// lookupAscending returns the factor of the first band whose threshold is
// an inclusive upper bound for value, or fallback past the last band.
func lookupAscending(bands []band, value, fallback float64) float64 {
	for _, b := range bands {
		if value <= b.threshold {
			return b.factor
		}
	}
	return fallback
}

// lookupDescending returns the factor of the first band whose threshold is
// an inclusive lower bound for value, or fallback below the last band.
func lookupDescending(bands []band, value, fallback float64) float64 {
	for _, b := range bands {
		if value >= b.threshold {
			return b.factor
		}
	}
	return fallback
}

// AQIPenaltyFactor returns the oxygen demand penalty for an AQI value.
// Total over all real inputs; values outside [0, 500] are not rejected here.
func AQIPenaltyFactor(aqi float64) float64 {
	return lookupAscending(aqiPenaltyBands, aqi, aqiHazardousFactor)
}

// SoilDegradationFactor returns the demand penalty for a soil quality index.
func SoilDegradationFactor(soilQuality float64) float64 {
	return lookupDescending(soilDegradationBands, soilQuality, soilVeryPoorFactor)
}

// DisasterLossFactor returns the demand penalty for a disaster frequency
// score.
func DisasterLossFactor(disasterFrequency float64) float64 {
	return lookupAscending(disasterLossBands, disasterFrequency, disasterVeryHighFactor)
}

// SoilTreeMultiplier maps soil quality linearly to a tree productivity
// multiplier, floored at MinSoilTreeMultiplier. Even severely degraded
// soil supports some minimum viable yield; the floor keeps the per-tree
// supply, and therefore the required-tree count, from diverging as soil
// quality approaches zero.
func SoilTreeMultiplier(soilQuality float64) float64 {
	m := soilQuality / 100
	if m < MinSoilTreeMultiplier {
		return MinSoilTreeMultiplier
	}
	return m
}
