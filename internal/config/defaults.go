package config

import (
	_ "embed"
)

//go:embed defaults/kong.yaml
var defaultKongYAML []byte

// DefaultKongConfig returns the default Kong configuration.
func DefaultKongConfig() KongConfig {
	return KongConfig{
		Gameplay: KongGameplay{
			Lives:      3,
			StartAmmo:  0,
			StartLevel: 0,
		},
		Timing: KongTiming{
			SimEvery:        3, // 20 sim ticks per second at 60fps
			MinSimEvery:     1,
			SpeedupPerLevel: 0,
			KeyBuffer:       4,
		},
		Colors: map[string]string{
			"player":     "bright_yellow",
			"floor":      "brown",
			"ladder":     "orange",
			"burp":       "bright_cyan",
			"bonfire":    "bright_red",
			"fireball":   "red",
			"koopa":      "green",
			"barrel":     "brown",
			"extra_life": "magenta",
			"garlic":     "white",
			"kong":       "bright_red",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "kong":
		return defaultKongYAML
	default:
		return nil
	}
}
