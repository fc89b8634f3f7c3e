// Package reward rolls randomized resource bundles for exploration.
package reward

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/osse101/MartianPotato_Go/internal/domain"
)

// Kind selects the reward table
type Kind int

const (
	// KindManual is a player-triggered exploration: integer amounts for a legible notice.
	KindManual Kind = iota
	// KindAutonomous is one tick of background exploration: continuous amounts scaled by rate.
	KindAutonomous
)

func (k Kind) String() string {
	switch k {
	case KindManual:
		return "manual"
	case KindAutonomous:
		return "autonomous"
	default:
		return "unknown"
	}
}

// Generator produces reward bundles. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from src. A nil src seeds from the current time.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(src)} //nolint:gosec // Game logic randomness, not security critical
}

// Roll draws a bundle for kind. rate is only used by KindAutonomous.
// Negative or non-finite multiplier and rate count as zero, so the result is never negative.
func (g *Generator) Roll(kind Kind, multiplier, rate float64) domain.Bundle {
	switch kind {
	case KindAutonomous:
		return g.RollAutonomous(rate, multiplier)
	default:
		return g.RollManual(multiplier)
	}
}

// RollManual draws water in [1,5], nutrients and ice in [1,10], each times multiplier and floored.
func (g *Generator) RollManual(multiplier float64) domain.Bundle {
	m := domain.SanitizeMultiplier(multiplier)

	g.mu.Lock()
	water := g.intn(ManualWaterMin, ManualWaterMax)
	nutrients := g.intn(ManualNutrientsMin, ManualNutrientsMax)
	ice := g.intn(ManualIceMin, ManualIceMax)
	g.mu.Unlock()

	return domain.Bundle{
		Water:     math.Floor(float64(water) * m),
		Nutrients: math.Floor(float64(nutrients) * m),
		Ice:       math.Floor(float64(ice) * m),
	}
}

// RollAutonomous draws water in [0.5,3.0), nutrients and ice in [1.0,6.0), each times rate and multiplier.
func (g *Generator) RollAutonomous(rate, multiplier float64) domain.Bundle {
	scale := domain.SanitizeMultiplier(rate) * domain.SanitizeMultiplier(multiplier)

	g.mu.Lock()
	water := g.uniform(AutoWaterMin, AutoWaterMax)
	nutrients := g.uniform(AutoNutrientsMin, AutoNutrientsMax)
	ice := g.uniform(AutoIceMin, AutoIceMax)
	g.mu.Unlock()

	return domain.Bundle{
		Water:     water * scale,
		Nutrients: nutrients * scale,
		Ice:       ice * scale,
	}.Clamp()
}

// intn returns an integer in [min, max]. Caller holds g.mu.
func (g *Generator) intn(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}

// uniform returns a float in [min, max). Caller holds g.mu.
func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
