package cooldown

import (
	"time"

	"github.com/osse101/MartianPotato_Go/internal/domain"
)

var builtinDelays = map[string]time.Duration{
	domain.ActionExplore: domain.ExploreCooldownDuration,
	domain.ActionPlant:   domain.DefaultPlantingDelay,
}

// Config tunes the tracker. The zero value uses the built-in delays.
type Config struct {
	// DevMode lets every action through while still recording it
	DevMode bool
	// Cooldowns overrides the delay per action name
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration resolves the delay for action: override, then built-in, then FallbackDelay.
func (c *Config) GetCooldownDuration(action string) time.Duration {
	if d, ok := c.Cooldowns[action]; ok {
		return d
	}
	if d, ok := builtinDelays[action]; ok {
		return d
	}
	return FallbackDelay
}
