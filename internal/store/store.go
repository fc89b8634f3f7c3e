// Package store holds the resource counters shared by every simulation component.
// All reads and writes go through one mutex, so a check followed by a write
// (consumption, spending) is atomic with respect to every timer callback.
package store

import (
	"sync"

	"github.com/osse101/MartianPotato_Go/internal/domain"
)

// Config holds the starting values and the per-planting consumption bundle.
type Config struct {
	Initial   domain.Resources
	PlantCost domain.Bundle
}

// DefaultConfig returns the stock starting resources: 20 of everything.
func DefaultConfig() Config {
	return Config{
		Initial: domain.Resources{
			Potatoes:                      DefaultStartingAmount,
			Water:                         DefaultStartingAmount,
			Nutrients:                     DefaultStartingAmount,
			Ice:                           DefaultStartingAmount,
			Efficiency:                    domain.DefaultEfficiency(),
			ExplorationResourceMultiplier: 1,
		},
		PlantCost: domain.Bundle{Water: 1, Nutrients: 1, Ice: 1},
	}
}

// Store is the process-wide resource store.
type Store struct {
	mu        sync.Mutex
	res       domain.Resources
	plantCost domain.Bundle
}

// New creates a store initialized from cfg.
func New(cfg Config) *Store {
	return &Store{
		res:       cfg.Initial,
		plantCost: cfg.PlantCost.Clamp(),
	}
}

// Snapshot returns a copy of the current resources.
func (s *Store) Snapshot() domain.Resources {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.res
}

// Restore replaces every counter and multiplier. Negative values are clamped to zero.
func (s *Store) Restore(r domain.Resources) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Potatoes < 0 {
		r.Potatoes = 0
	}
	b := domain.Bundle{Water: r.Water, Nutrients: r.Nutrients, Ice: r.Ice}.Clamp()
	r.Water, r.Nutrients, r.Ice = b.Water, b.Nutrients, b.Ice
	r.ExplorationResourceMultiplier = domain.SanitizeMultiplier(r.ExplorationResourceMultiplier)
	r.Efficiency = domain.Efficiency(domain.Bundle(r.Efficiency).Clamp())
	s.res = r
}

// AddReward credits a reward bundle after applying the per-resource efficiency.
// It returns the amounts actually credited.
func (s *Store) AddReward(b domain.Bundle) domain.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	credited := b.Clamp().ScaleBy(s.res.Efficiency).Clamp()
	s.res.Water += credited.Water
	s.res.Nutrients += credited.Nutrients
	s.res.Ice += credited.Ice
	return credited
}

// PlantCost returns the bundle consumed by one planting.
func (s *Store) PlantCost() domain.Bundle {
	return s.plantCost
}

// CanConsume reports whether one planting bundle is currently available.
func (s *Store) CanConsume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.res.Covers(s.plantCost)
}

// ConsumeAndMint deducts one planting bundle and credits n potatoes in a single
// critical section. It reports false, changing nothing, when resources are short.
func (s *Store) ConsumeAndMint(n int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.consumeLocked() {
		return false
	}
	s.res.Potatoes += n
	return true
}

func (s *Store) consumeLocked() bool {
	if !s.res.Covers(s.plantCost) {
		return false
	}
	s.res.Water -= s.plantCost.Water
	s.res.Nutrients -= s.plantCost.Nutrients
	s.res.Ice -= s.plantCost.Ice
	return true
}

// AddPotatoes credits n potatoes. Non-positive n is ignored.
func (s *Store) AddPotatoes(n int64) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.res.Potatoes += n
}

// SpendPotatoes deducts n potatoes if at least n are held.
// It returns whether the spend happened and the balance afterwards.
func (s *Store) SpendPotatoes(n int64) (bool, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 0 || s.res.Potatoes < n {
		return false, s.res.Potatoes
	}
	s.res.Potatoes -= n
	return true, s.res.Potatoes
}

// ExplorationMultiplier returns the exploration resource multiplier.
func (s *Store) ExplorationMultiplier() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.res.ExplorationResourceMultiplier
}

