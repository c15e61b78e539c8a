package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the Tenure Rush configuration and validates it.
// Search order: customPath -> ~/.tenure/configs/tenure.yaml -> ./configs/tenure.yaml -> embedded default.
// Files are decoded over the defaults, so a file may set only the keys it changes.
func Load(customPath string) (TenureConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TenureConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return TenureConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return TenureConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{userConfigPath("tenure.yaml"), filepath.Join("configs", "tenure.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("tenure.yaml", defaultTenureYAML)
	if err != nil {
		return DefaultTenureConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data over the defaults, choosing the format by extension.
func decode(path string, data []byte) (TenureConfig, error) {
	cfg := DefaultTenureConfig()
	// Lists replace rather than merge
	cfg.Spawning.Wanderer = nil

	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return TenureConfig{}, err
	}
	if len(cfg.Spawning.Wanderer) == 0 {
		cfg.Spawning.Wanderer = DefaultTenureConfig().Spawning.Wanderer
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tenure", "configs", filename)
}

// ParseDifficulty converts a flag value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *TenureConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHP = 7
		cfg.Wanderers.MinSpeed = 1.0
		cfg.Wanderers.MaxSpeed = 2.5
	case DifficultyHard:
		cfg.Player.MaxHP = 3
		cfg.Player.ImmunityTicks = 50
		cfg.Wanderers.MinSpeed = 2.5
		cfg.Wanderers.MaxSpeed = 4.5
	case DifficultyFixed:
		// Keep the first-level wanderer interval for the whole run
		if len(cfg.Spawning.Wanderer) > 1 {
			cfg.Spawning.Wanderer = cfg.Spawning.Wanderer[:1]
		}
	}
}
