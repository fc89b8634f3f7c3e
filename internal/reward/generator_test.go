package reward

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollManual_WithinRanges(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))

	seenWater := map[float64]bool{}
	for i := 0; i < 2000; i++ {
		b := g.RollManual(1)
		assert.GreaterOrEqual(t, b.Water, 1.0)
		assert.LessOrEqual(t, b.Water, 5.0)
		assert.GreaterOrEqual(t, b.Nutrients, 1.0)
		assert.LessOrEqual(t, b.Nutrients, 10.0)
		assert.GreaterOrEqual(t, b.Ice, 1.0)
		assert.LessOrEqual(t, b.Ice, 10.0)
		assert.Equal(t, math.Floor(b.Water), b.Water, "manual rewards are integers")
		seenWater[b.Water] = true
	}
	assert.Len(t, seenWater, 5, "every water value in [1,5] should appear")
}

func TestRollManual_ScaledAndFloored(t *testing.T) {
	g := NewGenerator(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		b := g.RollManual(1.5)
		assert.GreaterOrEqual(t, b.Water, 1.0)
		assert.LessOrEqual(t, b.Water, 7.0)
		assert.LessOrEqual(t, b.Nutrients, 15.0)
		assert.Equal(t, math.Floor(b.Nutrients), b.Nutrients)
	}
}

func TestRollAutonomous_WithinRanges(t *testing.T) {
	g := NewGenerator(rand.NewSource(3))
	rate, mult := 2.0, 1.5
	scale := rate * mult

	for i := 0; i < 2000; i++ {
		b := g.RollAutonomous(rate, mult)
		assert.GreaterOrEqual(t, b.Water, AutoWaterMin*scale)
		assert.Less(t, b.Water, AutoWaterMax*scale)
		assert.GreaterOrEqual(t, b.Nutrients, AutoNutrientsMin*scale)
		assert.Less(t, b.Nutrients, AutoNutrientsMax*scale)
		assert.GreaterOrEqual(t, b.Ice, AutoIceMin*scale)
		assert.Less(t, b.Ice, AutoIceMax*scale)
	}
}

func TestRoll_ZeroMultiplierGivesZero(t *testing.T) {
	g := NewGenerator(rand.NewSource(5))

	assert.True(t, g.Roll(KindManual, 0, 0).IsZero())
	assert.True(t, g.Roll(KindAutonomous, 0, 3).IsZero())
	assert.True(t, g.Roll(KindAutonomous, 2, 0).IsZero())
}

func TestRoll_InvalidInputsCountAsZero(t *testing.T) {
	g := NewGenerator(rand.NewSource(5))

	assert.True(t, g.RollManual(-2).IsZero())
	assert.True(t, g.RollManual(math.NaN()).IsZero())
	assert.True(t, g.RollAutonomous(math.Inf(1), 1).IsZero())
	assert.True(t, g.RollAutonomous(1, -1).IsZero())
}

func TestRoll_LinearInMultiplier(t *testing.T) {
	a := NewGenerator(rand.NewSource(11)).RollAutonomous(1, 1)
	b := NewGenerator(rand.NewSource(11)).RollAutonomous(1, 4)

	assert.InDelta(t, a.Water*4, b.Water, 1e-9)
	assert.InDelta(t, a.Nutrients*4, b.Nutrients, 1e-9)
	assert.InDelta(t, a.Ice*4, b.Ice, 1e-9)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "manual", KindManual.String())
	assert.Equal(t, "autonomous", KindAutonomous.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
