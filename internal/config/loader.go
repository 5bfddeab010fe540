package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadForestFire loads Forest Fire configuration.
// Search order: customPath -> ~/.wildfire/configs/forestfire.yaml -> ./configs/forestfire.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A custom path that fails to read, parse or validate is an error; the other
// locations are skipped silently.
func LoadForestFire(customPath string) (ForestFireConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ForestFireConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeForestFire(data)
		if err != nil {
			return ForestFireConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return ForestFireConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("forestfire.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "forestfire.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := decodeForestFire(defaultForestFireYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultForestFireConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (ForestFireConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ForestFireConfig{}, false
	}
	cfg, err := decodeForestFire(data)
	if err != nil || cfg.Validate() != nil {
		return ForestFireConfig{}, false
	}
	return cfg, true
}

func decodeForestFire(data []byte) (ForestFireConfig, error) {
	cfg := DefaultForestFireConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ForestFireConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wildfire", "configs", filename)
}
