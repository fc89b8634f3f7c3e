package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotKVRoundTrip(t *testing.T) {
	snap := Snapshot{
		Resources: Resources{
			Potatoes:                      42,
			Water:                         12.5,
			Nutrients:                     3,
			Ice:                           0.25,
			Efficiency:                    Efficiency{Water: 1.5, Nutrients: 1, Ice: 2},
			ExplorationResourceMultiplier: 1.2,
		},
		Tier:             2,
		AutoPlanterCosts: []int64{20, 23, 26},
		ExplorationRate:  0.5,
		Settings:         Settings{SoundMuted: true},
	}

	got, err := SnapshotFromKV(snap.ToKV(), Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestSnapshotFromKV_MissingKeysKeepBase(t *testing.T) {
	base := Snapshot{Resources: Resources{Potatoes: 20, Water: 20}, Tier: -1}

	got, err := SnapshotFromKV(map[string]string{KeyWater: "7"}, base)
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.Resources.Potatoes)
	assert.Equal(t, 7.0, got.Resources.Water)
	assert.Equal(t, -1, got.Tier)
	assert.Empty(t, got.AutoPlanterCosts)
}

func TestSnapshotFromKV_Invalid(t *testing.T) {
	tests := []struct {
		name string
		kv   map[string]string
	}{
		{"negative potatoes", map[string]string{KeyPotatoes: "-1"}},
		{"negative water", map[string]string{KeyWater: "-0.5"}},
		{"garbage float", map[string]string{KeyIce: "lots"}},
		{"garbage tier", map[string]string{KeyPlantingTier: "x"}},
		{"bad cost list", map[string]string{KeyAutoPlanterCosts: "20,,23"}},
		{"bad bool", map[string]string{KeySoundMuted: "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Snapshot{Tier: -1}
			got, err := SnapshotFromKV(tt.kv, base)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
			assert.Equal(t, base, got)
		})
	}
}

func TestBundleClamp(t *testing.T) {
	b := Bundle{Water: -1, Nutrients: 2, Ice: 3}.Clamp()
	assert.Equal(t, Bundle{Water: 0, Nutrients: 2, Ice: 3}, b)
	assert.False(t, b.IsZero())
	assert.True(t, Bundle{}.IsZero())
}
