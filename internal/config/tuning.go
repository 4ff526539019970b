package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds the gameplay knobs that are safe to adjust without
// touching code. Every field has a playable default; a tuning file only
// needs the keys it overrides.
type Tuning struct {
	BaseStepMs          int     `yaml:"baseStepMs"`          // pointer step at speed divisor 1
	MinStepMs           int     `yaml:"minStepMs"`           // floor for fast zones
	SpeedyFactor        float64 `yaml:"speedyFactor"`        // Speedy Fisher slowdown
	BiteChance          float64 `yaml:"biteChance"`          // per wait cycle
	FastBasePrice       float64 `yaml:"fastBasePrice"`       // first fast-fishing price
	FastGrowth          float64 `yaml:"fastGrowth"`          // compounding per action
	FastMissChance      float64 `yaml:"fastMissChance"`      // auto-miss per fish
	TreasureChance      float64 `yaml:"treasureChance"`      // per catch on Treasure Hunt days
	TreasureMin         int     `yaml:"treasureMin"`
	TreasureMax         int     `yaml:"treasureMax"`
	DailyEventChance    float64 `yaml:"dailyEventChance"`    // rolled each new day
	FullMoonChance      float64 `yaml:"fullMoonChance"`      // rolled nightly from 20:00
	FloatingDailyChance float64 `yaml:"floatingDailyChance"` // island appearing today
	FloatingKeyChance   float64 `yaml:"floatingKeyChance"`   // key hidden in a Sea catch
	JackpotChance       float64 `yaml:"jackpotChance"`       // Jackpot Sell triple
	StartingBalance     float64 `yaml:"startingBalance"`
}

func Default() Tuning {
	return Tuning{
		BaseStepMs:          100,
		MinStepMs:           5,
		SpeedyFactor:        1.3,
		BiteChance:          0.60,
		FastBasePrice:       15,
		FastGrowth:          1.005,
		FastMissChance:      0.30,
		TreasureChance:      0.10,
		TreasureMin:         500,
		TreasureMax:         2000,
		DailyEventChance:    0.30,
		FullMoonChance:      0.20,
		FloatingDailyChance: 0.30,
		FloatingKeyChance:   0.01,
		JackpotChance:       0.05,
		StartingBalance:     100,
	}
}

// Load reads a tuning file over the defaults. A missing file is not an
// error; the defaults are the shipped game.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}
	if t.BaseStepMs < 1 {
		t.BaseStepMs = 1
	}
	if t.MinStepMs < 1 {
		t.MinStepMs = 1
	}
	if t.FastGrowth < 1 {
		t.FastGrowth = 1
	}
	return t, nil
}
