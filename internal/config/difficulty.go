package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a flag value into a preset.
// Empty or unknown values return ok=false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// builtinPresets are used when the YAML does not define a preset.
var builtinPresets = map[DifficultyPreset]PresetConfig{
	DifficultyEasy:   {InitialFires: 3, SpreadInterval: 90, WaterDelay: 180},
	DifficultyNormal: {InitialFires: 6, SpreadInterval: 60, WaterDelay: 150},
	DifficultyHard:   {InitialFires: 10, SpreadInterval: 40, WaterDelay: 120},
}

// ApplyForestFirePreset modifies the config based on a difficulty preset.
// The fixed preset keeps the values from the file untouched; an empty
// preset changes nothing.
func ApplyForestFirePreset(cfg *ForestFireConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Preset = string(preset)
		return
	}

	p, ok := cfg.Difficulty.Presets[string(preset)]
	if !ok {
		p, ok = builtinPresets[preset]
		if !ok {
			return
		}
	}

	if p.InitialFires > 0 {
		cfg.Grid.InitialFires = p.InitialFires
	}
	if p.SpreadInterval > 0 {
		cfg.Timing.SpreadInterval = p.SpreadInterval
	}
	if p.WaterDelay > 0 {
		cfg.Timing.WaterDelay = p.WaterDelay
	}
	cfg.Difficulty.Preset = string(preset)
}
