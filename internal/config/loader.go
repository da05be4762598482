package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/racer.yaml"

// LoadRacer loads the game configuration.
// Search order: customPath -> ~/.racer/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadRacer(customPath string) (RacerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("racer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRacerYAML)
	if err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Load resolves the config and applies a difficulty preset, then validates it.
func Load(customPath string, preset DifficultyPreset) (RacerConfig, error) {
	cfg, err := LoadRacer(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultRacerConfig.
// A file that lists archetypes replaces the default set entirely.
func Parse(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg RacerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", "configs", filename)
}
