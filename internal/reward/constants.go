package reward

// Manual exploration ranges, inclusive integer bounds before the multiplier is applied
const (
	ManualWaterMin     = 1
	ManualWaterMax     = 5
	ManualNutrientsMin = 1
	ManualNutrientsMax = 10
	ManualIceMin       = 1
	ManualIceMax       = 10
)

// Autonomous exploration ranges, half-open [min, max) before rate and multiplier.
// Water and the other resources use different ranges; kept as observed in play.
const (
	AutoWaterMin     = 0.5
	AutoWaterMax     = 3.0
	AutoNutrientsMin = 1.0
	AutoNutrientsMax = 6.0
	AutoIceMin       = 1.0
	AutoIceMax       = 6.0
)
