package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Settings are the player preferences persisted alongside the game snapshot.
type Settings struct {
	SoundMuted bool `json:"sound_muted"`
	AdsOptIn   bool `json:"ads_opt_in"`
}

// Snapshot keys. The persisted format is a flat string map.
const (
	KeyPotatoes              = "potatoes"
	KeyWater                 = "water"
	KeyNutrients             = "nutrients"
	KeyIce                   = "ice"
	KeyWaterEfficiency       = "waterEfficiency"
	KeyNutrientsEfficiency   = "nutrientsEfficiency"
	KeyIceEfficiency         = "iceEfficiency"
	KeyExplorationMultiplier = "explorationResourceMultiplier"
	KeyExplorationRate       = "totalExplorationRate"
	KeyPlantingTier          = "currentTier"
	KeyAutoPlanterCosts      = "autoPlanterCosts"
	KeySoundMuted            = "soundMuted"
	KeyAdsOptIn              = "adsOptIn"
)

// Snapshot is everything needed to restore a game after a restart.
type Snapshot struct {
	Resources        Resources
	Tier             int
	AutoPlanterCosts []int64
	ExplorationRate  float64
	Settings         Settings
}

// ToKV flattens the snapshot into string key/value pairs.
func (s Snapshot) ToKV() map[string]string {
	costs := make([]string, len(s.AutoPlanterCosts))
	for i, c := range s.AutoPlanterCosts {
		costs[i] = strconv.FormatInt(c, 10)
	}

	return map[string]string{
		KeyPotatoes:              strconv.FormatInt(s.Resources.Potatoes, 10),
		KeyWater:                 formatFloat(s.Resources.Water),
		KeyNutrients:             formatFloat(s.Resources.Nutrients),
		KeyIce:                   formatFloat(s.Resources.Ice),
		KeyWaterEfficiency:       formatFloat(s.Resources.Efficiency.Water),
		KeyNutrientsEfficiency:   formatFloat(s.Resources.Efficiency.Nutrients),
		KeyIceEfficiency:         formatFloat(s.Resources.Efficiency.Ice),
		KeyExplorationMultiplier: formatFloat(s.Resources.ExplorationResourceMultiplier),
		KeyExplorationRate:       formatFloat(s.ExplorationRate),
		KeyPlantingTier:          strconv.Itoa(s.Tier),
		KeyAutoPlanterCosts:      strings.Join(costs, ","),
		KeySoundMuted:            strconv.FormatBool(s.Settings.SoundMuted),
		KeyAdsOptIn:              strconv.FormatBool(s.Settings.AdsOptIn),
	}
}

// SnapshotFromKV parses a flat map on top of base. Missing keys keep the base value;
// malformed or negative values are reported as ErrInvalidSnapshot.
func SnapshotFromKV(kv map[string]string, base Snapshot) (Snapshot, error) {
	s := base
	var err error

	if v, ok := kv[KeyPotatoes]; ok {
		if s.Resources.Potatoes, err = parseCount(KeyPotatoes, v); err != nil {
			return base, err
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{KeyWater, &s.Resources.Water},
		{KeyNutrients, &s.Resources.Nutrients},
		{KeyIce, &s.Resources.Ice},
		{KeyWaterEfficiency, &s.Resources.Efficiency.Water},
		{KeyNutrientsEfficiency, &s.Resources.Efficiency.Nutrients},
		{KeyIceEfficiency, &s.Resources.Efficiency.Ice},
		{KeyExplorationMultiplier, &s.Resources.ExplorationResourceMultiplier},
		{KeyExplorationRate, &s.ExplorationRate},
	}
	for _, f := range floats {
		v, ok := kv[f.key]
		if !ok {
			continue
		}
		parsed, perr := strconv.ParseFloat(v, 64)
		if perr != nil || parsed < 0 || parsed != SanitizeMultiplier(parsed) {
			return base, fmt.Errorf("%w: %s=%q", ErrInvalidSnapshot, f.key, v)
		}
		*f.dst = parsed
	}

	if v, ok := kv[KeyPlantingTier]; ok {
		tier, perr := strconv.Atoi(v)
		if perr != nil || tier < -1 {
			return base, fmt.Errorf("%w: %s=%q", ErrInvalidSnapshot, KeyPlantingTier, v)
		}
		s.Tier = tier
	}

	if v, ok := kv[KeyAutoPlanterCosts]; ok {
		s.AutoPlanterCosts = nil
		if v != "" {
			for _, part := range strings.Split(v, ",") {
				c, perr := parseCount(KeyAutoPlanterCosts, strings.TrimSpace(part))
				if perr != nil {
					return base, perr
				}
				s.AutoPlanterCosts = append(s.AutoPlanterCosts, c)
			}
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{KeySoundMuted, &s.Settings.SoundMuted},
		{KeyAdsOptIn, &s.Settings.AdsOptIn},
	}
	for _, b := range bools {
		v, ok := kv[b.key]
		if !ok {
			continue
		}
		parsed, perr := strconv.ParseBool(v)
		if perr != nil {
			return base, fmt.Errorf("%w: %s=%q", ErrInvalidSnapshot, b.key, v)
		}
		*b.dst = parsed
	}

	return s, nil
}

func parseCount(key, v string) (int64, error) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidSnapshot, key, v)
	}
	return n, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
