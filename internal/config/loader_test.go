package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forestfire.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeForestFire(defaultForestFireYAML)
	if err != nil {
		t.Fatalf("decode embedded: %v", err)
	}
	def := DefaultForestFireConfig()
	if cfg.Grid != def.Grid || cfg.Timing != def.Timing || cfg.Sound != def.Sound {
		t.Errorf("embedded = %+v, hardcoded = %+v", cfg, def)
	}
	if len(cfg.Difficulty.Presets) != 3 {
		t.Errorf("embedded presets = %d, want 3", len(cfg.Difficulty.Presets))
	}
}

func TestLoadCustomPathMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, "grid:\n  initial_fires: 2\n")

	cfg, err := LoadForestFire(path)
	if err != nil {
		t.Fatalf("LoadForestFire: %v", err)
	}
	if cfg.Grid.InitialFires != 2 {
		t.Errorf("InitialFires = %d, want 2", cfg.Grid.InitialFires)
	}
	if cfg.Grid.Size != 30 || cfg.Timing.SpreadInterval != 60 {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		invalid bool
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, false},
		{"malformed", func(t *testing.T) string { return writeConfig(t, "grid: [1, 2\n") }, false},
		{"zero size", func(t *testing.T) string { return writeConfig(t, "grid:\n  size: 0\n") }, true},
		{"too many fires", func(t *testing.T) string { return writeConfig(t, "grid:\n  size: 2\n  initial_fires: 5\n") }, true},
		{"zero interval", func(t *testing.T) string { return writeConfig(t, "timing:\n  spread_interval: 0\n") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadForestFire(tt.path(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultForestFireConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.Grid.InitialFires = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero fires should be valid: %v", err)
	}

	cfg.Sound.Volume = 1.5
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("volume 1.5: got %v, want ErrInvalidConfig", err)
	}
}

func TestApplyForestFirePreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantFires    int
		wantInterval int
	}{
		{DifficultyEasy, 3, 90},
		{DifficultyNormal, 6, 60},
		{DifficultyHard, 10, 40},
		{DifficultyFixed, 4, 50},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultForestFireConfig()
			cfg.Grid.InitialFires = 4
			cfg.Timing.SpreadInterval = 50

			ApplyForestFirePreset(&cfg, tt.preset)

			if cfg.Grid.InitialFires != tt.wantFires {
				t.Errorf("InitialFires = %d, want %d", cfg.Grid.InitialFires, tt.wantFires)
			}
			if cfg.Timing.SpreadInterval != tt.wantInterval {
				t.Errorf("SpreadInterval = %d, want %d", cfg.Timing.SpreadInterval, tt.wantInterval)
			}
		})
	}
}

func TestApplyPresetPrefersFileOverrides(t *testing.T) {
	cfg := DefaultForestFireConfig()
	cfg.Difficulty.Presets = map[string]PresetConfig{
		"hard": {InitialFires: 20},
	}

	ApplyForestFirePreset(&cfg, DifficultyHard)

	if cfg.Grid.InitialFires != 20 {
		t.Errorf("InitialFires = %d, want 20", cfg.Grid.InitialFires)
	}
	if cfg.Timing.SpreadInterval != 60 {
		t.Errorf("SpreadInterval changed to %d, zero override should keep base", cfg.Timing.SpreadInterval)
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
