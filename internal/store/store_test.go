package store

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MartianPotato_Go/internal/domain"
)

func TestNewStoreDefaults(t *testing.T) {
	s := New(DefaultConfig())
	snap := s.Snapshot()

	assert.Equal(t, int64(20), snap.Potatoes)
	assert.Equal(t, 20.0, snap.Water)
	assert.Equal(t, 20.0, snap.Nutrients)
	assert.Equal(t, 20.0, snap.Ice)
	assert.Equal(t, domain.DefaultEfficiency(), snap.Efficiency)
	assert.Equal(t, 1.0, snap.ExplorationResourceMultiplier)
}

func TestConsumeAndMint_AllOrNothing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Initial.Water = 5
	cfg.Initial.Nutrients = 0.5
	cfg.Initial.Ice = 5
	s := New(cfg)

	assert.False(t, s.CanConsume())
	assert.False(t, s.ConsumeAndMint(1))

	snap := s.Snapshot()
	assert.Equal(t, int64(20), snap.Potatoes, "no potato is minted on failed consumption")
	assert.Equal(t, 5.0, snap.Water, "water must not be touched on failed consumption")
	assert.Equal(t, 0.5, snap.Nutrients)
	assert.Equal(t, 5.0, snap.Ice)
}

func TestConsumeAndMint(t *testing.T) {
	s := New(DefaultConfig())

	for i := 0; i < 20; i++ {
		require.True(t, s.ConsumeAndMint(1), "tick %d", i)
	}
	assert.False(t, s.ConsumeAndMint(1))

	snap := s.Snapshot()
	assert.Equal(t, int64(40), snap.Potatoes)
	assert.Equal(t, 0.0, snap.Water)
	assert.Equal(t, 0.0, snap.Nutrients)
	assert.Equal(t, 0.0, snap.Ice)
}

func TestSpendPotatoes(t *testing.T) {
	s := New(DefaultConfig())

	ok, left := s.SpendPotatoes(21)
	assert.False(t, ok)
	assert.Equal(t, int64(20), left)

	ok, left = s.SpendPotatoes(20)
	assert.True(t, ok)
	assert.Equal(t, int64(0), left)

	ok, _ = s.SpendPotatoes(-1)
	assert.False(t, ok)
}

func TestAddRewardAppliesEfficiency(t *testing.T) {
	s := New(DefaultConfig())
	snap := s.Snapshot()
	snap.Efficiency = domain.Efficiency{Water: 2, Nutrients: 1, Ice: 0.5}
	s.Restore(snap)

	credited := s.AddReward(domain.Bundle{Water: 3, Nutrients: 4, Ice: -2})
	assert.Equal(t, domain.Bundle{Water: 6, Nutrients: 4, Ice: 0}, credited)

	snap = s.Snapshot()
	assert.Equal(t, 26.0, snap.Water)
	assert.Equal(t, 24.0, snap.Nutrients)
	assert.Equal(t, 20.0, snap.Ice)
}

func TestRestoreClampsNegatives(t *testing.T) {
	s := New(DefaultConfig())
	s.Restore(domain.Resources{
		Potatoes:                      -3,
		Water:                         -1,
		Nutrients:                     math.NaN(),
		Ice:                           4,
		Efficiency:                    domain.Efficiency{Water: -1, Nutrients: 1, Ice: 1},
		ExplorationResourceMultiplier: math.Inf(1),
	})

	snap := s.Snapshot()
	assert.Equal(t, int64(0), snap.Potatoes)
	assert.Equal(t, 0.0, snap.Water)
	assert.Equal(t, 0.0, snap.Nutrients)
	assert.Equal(t, 4.0, snap.Ice)
	assert.Equal(t, 0.0, snap.Efficiency.Water)
	assert.Equal(t, 0.0, snap.ExplorationResourceMultiplier)
}

// Random interleavings of rewards, consumption and spending never leave a negative counter.
func TestStoreNeverNegative_Concurrent(t *testing.T) {
	s := New(DefaultConfig())

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < 500; i++ {
				switch rng.Intn(4) {
				case 0:
					s.AddReward(domain.Bundle{Water: rng.Float64(), Nutrients: rng.Float64(), Ice: rng.Float64()})
				case 1:
					s.ConsumeAndMint(0)
				case 2:
					s.SpendPotatoes(int64(rng.Intn(5)))
				case 3:
					s.ConsumeAndMint(1)
				}
				snap := s.Snapshot()
				if snap.Potatoes < 0 || snap.Water < 0 || snap.Nutrients < 0 || snap.Ice < 0 {
					t.Errorf("negative resource: %+v", snap)
					return
				}
			}
		}(int64(w))
	}
	wg.Wait()
}

func BenchmarkConsumeAndMint(b *testing.B) {
	s := New(DefaultConfig())
	s.Restore(domain.Resources{Water: 1e12, Nutrients: 1e12, Ice: 1e12, Efficiency: domain.DefaultEfficiency()})

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.ConsumeAndMint(1)
		}
	})
}

func BenchmarkAddReward(b *testing.B) {
	s := New(DefaultConfig())
	reward := domain.Bundle{Water: 2.5, Nutrients: 1, Ice: 3}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.AddReward(reward)
	}
}
