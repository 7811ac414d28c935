package config

import (
	_ "embed"
)

//go:embed defaults/humanbench.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Reaction: ReactionConfig{
			Attempts:   5,
			MinDelayMS: 2000,
			MaxDelayMS: 4000,
		},
		Verbal: VerbalConfig{
			Lives:        3,
			RepeatChance: 0.3,
		},
		Number: NumberConfig{
			StartLevel:     1,
			DigitsPerLevel: 1,
			ShowMS:         1700,
		},
	}
}
