package config

import (
	_ "embed"
)

//go:embed defaults/forestfire.yaml
var defaultForestFireYAML []byte

// DefaultForestFireConfig returns the default Forest Fire configuration.
// It names no preset, so a config file without one is used as written.
func DefaultForestFireConfig() ForestFireConfig {
	return ForestFireConfig{
		Grid: ForestGrid{
			Size:         30,
			InitialFires: 6,
		},
		Timing: ForestTiming{
			SpreadInterval: 60,
			WaterDelay:     150,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.3,
		},
	}
}
