package config

import "fmt"

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetEasy:
		return PresetEasy, nil
	case PresetHard:
		return PresetHard, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Reaction.Attempts = 3
		cfg.Verbal.Lives = 5
		cfg.Verbal.RepeatChance = 0.25
		cfg.Number.ShowMS = 3000
	case PresetHard:
		// Wider delay window makes the signal harder to anticipate
		cfg.Reaction.MinDelayMS = 1000
		cfg.Reaction.MaxDelayMS = 5000
		cfg.Verbal.Lives = 1
		cfg.Verbal.RepeatChance = 0.4
		cfg.Number.ShowMS = 1000
	}
}
