package game

import (
	"math/rand"

	"github.com/osse101/MartianPotato_Go/internal/cooldown"
	"github.com/osse101/MartianPotato_Go/internal/exploration"
	"github.com/osse101/MartianPotato_Go/internal/planting"
	"github.com/osse101/MartianPotato_Go/internal/store"
)

// Config holds game tuning
type Config struct {
	Store       store.Config
	Cooldown    cooldown.Config
	Exploration exploration.Config
	Planting    planting.Config
	// RandSource seeds reward rolls. Nil seeds from the clock.
	RandSource rand.Source
}

// DefaultConfig returns the stock tuning: 20 of every resource, a 10s exploration
// cooldown, a 1s autonomous tick and the five-entry upgrade list.
func DefaultConfig() Config {
	return Config{
		Store:    store.DefaultConfig(),
		Cooldown: cooldown.Config{},
		Planting: planting.Config{Upgrades: planting.DefaultUpgrades()},
	}
}
