// Package config provides YAML and TOML game configuration loading and
// difficulty presets for Kong.
package config

// KongConfig contains all configuration for the Kong game.
type KongConfig struct {
	Gameplay KongGameplay      `yaml:"gameplay" toml:"gameplay"`
	Timing   KongTiming        `yaml:"timing" toml:"timing"`
	Levels   KongLevels        `yaml:"levels" toml:"levels"`
	Colors   map[string]string `yaml:"colors" toml:"colors"` // entity kind -> color name
}

// KongGameplay defines session parameters.
type KongGameplay struct {
	Lives      int `yaml:"lives" toml:"lives"`
	StartAmmo  int `yaml:"start_ammo" toml:"start_ammo"`
	StartLevel int `yaml:"start_level" toml:"start_level"`
}

// KongTiming defines how platform ticks map onto simulation ticks.
type KongTiming struct {
	SimEvery        int `yaml:"sim_every" toml:"sim_every"`                 // Platform ticks per sim tick
	MinSimEvery     int `yaml:"min_sim_every" toml:"min_sim_every"`         // Fastest pace reachable
	SpeedupPerLevel int `yaml:"speedup_per_level" toml:"speedup_per_level"` // sim_every reduction per level
	KeyBuffer       int `yaml:"key_buffer" toml:"key_buffer"`               // Buffered keys between sim ticks
}

// KongLevels defines where level files are read from.
type KongLevels struct {
	Dir string `yaml:"dir" toml:"dir"` // Empty means the embedded levels
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables the per-level speedup.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
