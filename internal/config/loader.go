package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadKong loads Kong configuration. Files are decoded over the defaults, so
// a partial file only overrides what it names. A custom path ending in
// .toml is decoded as TOML.
// Search order: customPath -> ~/.arcade/configs/kong.yaml -> ./configs/kong.yaml -> embedded default
func LoadKong(customPath string) (KongConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KongConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeKong(data, filepath.Ext(customPath))
		if err != nil {
			return KongConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeKong(data, ".yaml"); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/kong.yaml"); err == nil {
		if cfg, err := decodeKong(data, ".yaml"); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeKong(defaultKongYAML, ".yaml")
	if err != nil {
		return DefaultKongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeKong(data []byte, ext string) (KongConfig, error) {
	cfg := DefaultKongConfig()
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return KongConfig{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return KongConfig{}, err
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyKongPreset modifies the config based on a difficulty preset.
func ApplyKongPreset(cfg *KongConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Timing.SpeedupPerLevel = 0
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.StartAmmo = 5
		cfg.Timing.SimEvery++
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.StartAmmo = 0
		cfg.Timing.SimEvery = max(cfg.Timing.SimEvery-1, 1)
		cfg.Timing.SpeedupPerLevel = 1
	}
}
