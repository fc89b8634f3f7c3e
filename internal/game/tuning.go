package game

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/validation"
)

const tuningSchemaName = "tuning.schema.json"

//go:embed tuning.schema.json
var tuningSchema []byte

// tuningFile is the on-disk shape of a tuning override. Absent fields keep defaults.
type tuningFile struct {
	StartingResources *struct {
		Potatoes  *int64   `json:"potatoes"`
		Water     *float64 `json:"water"`
		Nutrients *float64 `json:"nutrients"`
		Ice       *float64 `json:"ice"`
	} `json:"starting_resources"`
	PlantCost           *domain.Bundle `json:"plant_cost"`
	ExploreCooldownMS   *int64         `json:"explore_cooldown_ms"`
	BasePlantingDelayMS *int64         `json:"base_planting_delay_ms"`
	TickIntervalMS      *int64         `json:"tick_interval_ms"`
	Upgrades            []struct {
		Key             string `json:"key"`
		Name            string `json:"name"`
		Kind            string `json:"kind"`
		Cost            int64  `json:"cost"`
		PlantingDelayMS int64  `json:"planting_delay_ms"`
	} `json:"upgrades"`
}

// LoadConfigFile reads a JSON tuning file, validates it against the embedded
// schema and applies it on top of DefaultConfig. An empty path returns the defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%s %s: %w", ErrMsgReadTuning, path, err)
	}
	return ParseConfig(data)
}

// ParseConfig validates and applies a tuning document on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	v := validation.NewSchemaValidator()
	if err := v.AddSchema(tuningSchemaName, tuningSchema); err != nil {
		return cfg, err
	}
	if err := v.ValidateBytes(data, tuningSchemaName); err != nil {
		return cfg, fmt.Errorf("%s: %w", ErrMsgInvalidTuning, err)
	}

	var tf tuningFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return cfg, fmt.Errorf("%s: %w", ErrMsgInvalidTuning, err)
	}

	if sr := tf.StartingResources; sr != nil {
		setIf(&cfg.Store.Initial.Potatoes, sr.Potatoes)
		setIf(&cfg.Store.Initial.Water, sr.Water)
		setIf(&cfg.Store.Initial.Nutrients, sr.Nutrients)
		setIf(&cfg.Store.Initial.Ice, sr.Ice)
	}
	if tf.PlantCost != nil {
		cfg.Store.PlantCost = *tf.PlantCost
	}
	if tf.ExploreCooldownMS != nil {
		cfg.Cooldown.Cooldowns = map[string]time.Duration{
			domain.ActionExplore: millis(*tf.ExploreCooldownMS),
		}
	}
	if tf.BasePlantingDelayMS != nil {
		cfg.Planting.BaseDelay = millis(*tf.BasePlantingDelayMS)
	}
	if tf.TickIntervalMS != nil {
		cfg.Exploration.TickInterval = millis(*tf.TickIntervalMS)
	}

	if tf.Upgrades != nil {
		upgrades := make([]domain.Upgrade, len(tf.Upgrades))
		for i, u := range tf.Upgrades {
			upgrades[i] = domain.Upgrade{
				Index: i,
				Key:   u.Key,
				Name:  u.Name,
				Kind:  u.Kind,
				Cost:  u.Cost,
			}
			if u.Kind == domain.UpgradeKindLinear {
				upgrades[i].PlantingDelay = millis(u.PlantingDelayMS)
			}
		}
		cfg.Planting.Upgrades = upgrades
	}

	return cfg, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
