package domain

import "time"

// Action names gated by cooldowns
const (
	ActionExplore = "explore"
	ActionPlant   = "plant"
)

// Default cooldown durations
const (
	ExploreCooldownDuration     = 10 * time.Second
	DefaultPlantingDelay        = 5 * time.Second
	AutonomousExplorationPeriod = time.Second
)
