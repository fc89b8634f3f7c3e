package domain

import "math"

// Resource names used in notices, metrics labels and snapshot keys
const (
	ResourcePotatoes  = "potatoes"
	ResourceWater     = "water"
	ResourceNutrients = "nutrients"
	ResourceIce       = "ice"
)

// Bundle is an amount of each consumable resource. Rewards and consumption
// costs are both expressed as bundles.
type Bundle struct {
	Water     float64 `json:"water"`
	Nutrients float64 `json:"nutrients"`
	Ice       float64 `json:"ice"`
}

// Scale returns the bundle multiplied component-wise by f.
func (b Bundle) Scale(f float64) Bundle {
	return Bundle{
		Water:     b.Water * f,
		Nutrients: b.Nutrients * f,
		Ice:       b.Ice * f,
	}
}

// ScaleBy multiplies each component by the matching efficiency.
func (b Bundle) ScaleBy(e Efficiency) Bundle {
	return Bundle{
		Water:     b.Water * e.Water,
		Nutrients: b.Nutrients * e.Nutrients,
		Ice:       b.Ice * e.Ice,
	}
}

// Clamp returns the bundle with negative or non-finite components replaced by zero.
func (b Bundle) Clamp() Bundle {
	return Bundle{
		Water:     nonNegative(b.Water),
		Nutrients: nonNegative(b.Nutrients),
		Ice:       nonNegative(b.Ice),
	}
}

// IsZero reports whether every component is zero.
func (b Bundle) IsZero() bool {
	return b.Water == 0 && b.Nutrients == 0 && b.Ice == 0
}

// Efficiency holds the per-resource reward multipliers. All default to 1.
type Efficiency struct {
	Water     float64 `json:"water"`
	Nutrients float64 `json:"nutrients"`
	Ice       float64 `json:"ice"`
}

// DefaultEfficiency returns the neutral efficiency set.
func DefaultEfficiency() Efficiency {
	return Efficiency{Water: 1, Nutrients: 1, Ice: 1}
}

// Resources is a point-in-time view of the resource store.
type Resources struct {
	Potatoes                      int64      `json:"potatoes"`
	Water                         float64    `json:"water"`
	Nutrients                     float64    `json:"nutrients"`
	Ice                           float64    `json:"ice"`
	Efficiency                    Efficiency `json:"efficiency"`
	ExplorationResourceMultiplier float64    `json:"exploration_resource_multiplier"`
}

// Covers reports whether the resources hold at least the given bundle.
func (r Resources) Covers(b Bundle) bool {
	return r.Water >= b.Water && r.Nutrients >= b.Nutrients && r.Ice >= b.Ice
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SanitizeMultiplier maps negative and non-finite values to zero.
func SanitizeMultiplier(v float64) float64 {
	return nonNegative(v)
}
