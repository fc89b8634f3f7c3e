package domain

import "time"

// Upgrade kinds
const (
	UpgradeKindLinear     = "linear"
	UpgradeKindRepeatable = "repeatable"
)

// Upgrade describes one entry of the ordered planting upgrade list.
type Upgrade struct {
	Index         int           `json:"index"`
	Key           string        `json:"key"`
	Name          string        `json:"name"`
	Kind          string        `json:"kind"`
	Cost          int64         `json:"cost"`
	PlantingDelay time.Duration `json:"planting_delay,omitempty"` // linear only
}

// Repeatable reports whether the upgrade can be bought more than once.
func (u Upgrade) Repeatable() bool {
	return u.Kind == UpgradeKindRepeatable
}

// AutoPlanter is one owned auto-planter unit.
type AutoPlanter struct {
	ID             string    `json:"id"`
	CostAtPurchase int64     `json:"cost_at_purchase"`
	PurchasedAt    time.Time `json:"purchased_at"`
	Active         bool      `json:"active"`
}

// UpgradeOffer is an upgrade currently exposed for purchase, with its current price.
type UpgradeOffer struct {
	Upgrade
	Price      int64 `json:"price"`
	Affordable bool  `json:"affordable"`
}

// PurchaseResult reports the outcome of an upgrade purchase attempt.
// Purchased is false when the player could not afford it; that is not an error.
type PurchaseResult struct {
	Upgrade    Upgrade       `json:"upgrade"`
	Purchased  bool          `json:"purchased"`
	Price      int64         `json:"price"`
	Potatoes   int64         `json:"potatoes"`
	Tier       int           `json:"tier"`
	UnitID     string        `json:"unit_id,omitempty"`
	OwnedCount int           `json:"owned_count"`
	NewDelay   time.Duration `json:"new_delay,omitempty"`
}

// PlantResult reports the outcome of a manual planting attempt.
type PlantResult struct {
	Allowed   bool          `json:"allowed"`
	Remaining time.Duration `json:"remaining,omitempty"`
	Planted   bool          `json:"planted"`
	Potatoes  int64         `json:"potatoes"`
}

// PlantingState is a snapshot of the planting engine.
type PlantingState struct {
	Tier          int           `json:"tier"`
	PlantingDelay time.Duration `json:"planting_delay"`
	AutoPlanters  []AutoPlanter `json:"auto_planters"`
	NextUnitCost  int64         `json:"next_unit_cost"`
}
