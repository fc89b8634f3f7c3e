package planting

import (
	"math"
	"time"

	"github.com/osse101/MartianPotato_Go/internal/domain"
)

// Upgrade keys
const (
	UpgradeDripIrrigation     = "drip_irrigation"
	UpgradeRegolithFertilizer = "regolith_fertilizer"
	UpgradeHeatedGreenhouse   = "heated_greenhouse"
	UpgradeAutoPlanter        = "auto_planter"
	UpgradeHydroponicBay      = "hydroponic_bay"
)

// AutoPlanterGrowth is the price multiplier applied per owned unit
const AutoPlanterGrowth = 1.15

// costEpsilon absorbs float error so that e.g. 20 x 1.15 floors to 23, not 22.
const costEpsilon = 1e-9

// DefaultUpgrades returns the ordered upgrade list. Index 3 is the repeatable auto-planter.
func DefaultUpgrades() []domain.Upgrade {
	return []domain.Upgrade{
		{Index: 0, Key: UpgradeDripIrrigation, Name: "Drip Irrigation", Kind: domain.UpgradeKindLinear, Cost: 10, PlantingDelay: 4000 * time.Millisecond},
		{Index: 1, Key: UpgradeRegolithFertilizer, Name: "Regolith Fertilizer", Kind: domain.UpgradeKindLinear, Cost: 25, PlantingDelay: 3000 * time.Millisecond},
		{Index: 2, Key: UpgradeHeatedGreenhouse, Name: "Heated Greenhouse", Kind: domain.UpgradeKindLinear, Cost: 50, PlantingDelay: 2000 * time.Millisecond},
		{Index: 3, Key: UpgradeAutoPlanter, Name: "Auto-Planter", Kind: domain.UpgradeKindRepeatable, Cost: 20},
		{Index: 4, Key: UpgradeHydroponicBay, Name: "Hydroponic Bay", Kind: domain.UpgradeKindLinear, Cost: 100, PlantingDelay: 1000 * time.Millisecond},
	}
}

// AutoPlanterCost is the price of the next unit when count are already owned:
// floor(base x 1.15^count).
func AutoPlanterCost(base int64, count int) int64 {
	if count < 0 {
		count = 0
	}
	return int64(math.Floor(float64(base)*math.Pow(AutoPlanterGrowth, float64(count)) + costEpsilon))
}
