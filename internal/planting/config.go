package planting

import (
	"time"

	"github.com/osse101/MartianPotato_Go/internal/domain"
)

// Config holds planting tuning
type Config struct {
	// Upgrades is the ordered upgrade list. Nil uses DefaultUpgrades.
	Upgrades []domain.Upgrade
	// BaseDelay is the planting delay before any tier is bought. Zero uses five seconds.
	BaseDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.Upgrades == nil {
		c.Upgrades = DefaultUpgrades()
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = domain.DefaultPlantingDelay
	}
	return c
}
