// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ForestFireConfig contains all configuration for the Forest Fire game.
type ForestFireConfig struct {
	Grid       ForestGrid       `yaml:"grid"`
	Timing     ForestTiming     `yaml:"timing"`
	Sound      SoundConfig      `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ForestGrid defines the board.
type ForestGrid struct {
	Size         int `yaml:"size"`          // Side length of the square forest
	InitialFires int `yaml:"initial_fires"` // Fires seeded at start
}

// ForestTiming defines simulation timing in ticks (60 ticks per second).
type ForestTiming struct {
	SpreadInterval int `yaml:"spread_interval"` // Ticks between fire generations
	WaterDelay     int `yaml:"water_delay"`     // Ticks a water splash lasts
}

// SoundConfig controls sound effects.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// DifficultyConfig holds per-preset overrides.
type DifficultyConfig struct {
	Preset  string                  `yaml:"preset"` // easy, normal, hard or fixed
	Presets map[string]PresetConfig `yaml:"presets"`
}

// PresetConfig overrides grid and timing values for one difficulty.
// Zero fields keep the base value.
type PresetConfig struct {
	InitialFires   int `yaml:"initial_fires"`
	SpreadInterval int `yaml:"spread_interval"`
	WaterDelay     int `yaml:"water_delay"`
}

// Validate checks that the configuration can drive a simulation.
func (c ForestFireConfig) Validate() error {
	if c.Grid.Size <= 0 {
		return fmt.Errorf("%w: grid.size must be positive, got %d", ErrInvalidConfig, c.Grid.Size)
	}
	if c.Grid.InitialFires < 0 || c.Grid.InitialFires > c.Grid.Size*c.Grid.Size {
		return fmt.Errorf("%w: grid.initial_fires must be within 0..%d, got %d",
			ErrInvalidConfig, c.Grid.Size*c.Grid.Size, c.Grid.InitialFires)
	}
	if c.Timing.SpreadInterval <= 0 {
		return fmt.Errorf("%w: timing.spread_interval must be positive, got %d", ErrInvalidConfig, c.Timing.SpreadInterval)
	}
	if c.Timing.WaterDelay <= 0 {
		return fmt.Errorf("%w: timing.water_delay must be positive, got %d", ErrInvalidConfig, c.Timing.WaterDelay)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: sound.volume must be within 0..1, got %g", ErrInvalidConfig, c.Sound.Volume)
	}
	return nil
}
