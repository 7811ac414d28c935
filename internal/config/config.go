// Package config provides YAML-based game configuration loading and
// difficulty presets for the benchmark games.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Validate for values no game can run with.
var ErrInvalidConfig = errors.New("config: invalid")

// Config contains the tunable parameters for every game.
type Config struct {
	Reaction ReactionConfig `yaml:"reaction"`
	Verbal   VerbalConfig   `yaml:"verbal"`
	Number   NumberConfig   `yaml:"number"`
}

// ReactionConfig defines parameters for Reaction Time.
type ReactionConfig struct {
	Attempts   int `yaml:"attempts"`     // Successful rounds per game
	MinDelayMS int `yaml:"min_delay_ms"` // Shortest wait before the signal
	MaxDelayMS int `yaml:"max_delay_ms"` // Longest wait before the signal
}

// MinDelay returns the minimum signal delay.
func (c ReactionConfig) MinDelay() time.Duration {
	return time.Duration(c.MinDelayMS) * time.Millisecond
}

// MaxDelay returns the maximum signal delay.
func (c ReactionConfig) MaxDelay() time.Duration {
	return time.Duration(c.MaxDelayMS) * time.Millisecond
}

// VerbalConfig defines parameters for Verbal Memory.
type VerbalConfig struct {
	Lives        int     `yaml:"lives"`
	RepeatChance float64 `yaml:"repeat_chance"` // Probability of showing a seen word
	WordList     string  `yaml:"word_list"`     // Optional path to a custom word list

	// Words is filled from WordList by Load. Empty means the built-in list.
	Words []string `yaml:"-"`
}

// NumberConfig defines parameters for Number Memory.
type NumberConfig struct {
	StartLevel     int `yaml:"start_level"`
	DigitsPerLevel int `yaml:"digits_per_level"`
	ShowMS         int `yaml:"show_ms"` // How long the number stays visible
}

// ShowDuration returns how long the number is displayed.
func (c NumberConfig) ShowDuration() time.Duration {
	return time.Duration(c.ShowMS) * time.Millisecond
}

// Digits returns the length of the sequence shown at the given level.
func (c NumberConfig) Digits(level int) int {
	per := c.DigitsPerLevel
	if per < 1 {
		per = 1
	}
	return max(level, 1) * per
}

// Validate checks that every parameter is usable.
func (c Config) Validate() error {
	var errs []error

	if c.Reaction.Attempts < 1 {
		errs = append(errs, fmt.Errorf("reaction.attempts must be at least 1, got %d", c.Reaction.Attempts))
	}
	if c.Reaction.MinDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("reaction.min_delay_ms must be positive, got %d", c.Reaction.MinDelayMS))
	}
	if c.Reaction.MaxDelayMS < c.Reaction.MinDelayMS {
		errs = append(errs, fmt.Errorf("reaction.max_delay_ms (%d) is below min_delay_ms (%d)",
			c.Reaction.MaxDelayMS, c.Reaction.MinDelayMS))
	}
	if c.Verbal.Lives < 1 {
		errs = append(errs, fmt.Errorf("verbal.lives must be at least 1, got %d", c.Verbal.Lives))
	}
	if c.Verbal.RepeatChance < 0 || c.Verbal.RepeatChance >= 1 {
		errs = append(errs, fmt.Errorf("verbal.repeat_chance must be in [0, 1), got %g", c.Verbal.RepeatChance))
	}
	if c.Number.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("number.start_level must be at least 1, got %d", c.Number.StartLevel))
	}
	if c.Number.DigitsPerLevel < 1 {
		errs = append(errs, fmt.Errorf("number.digits_per_level must be at least 1, got %d", c.Number.DigitsPerLevel))
	}
	if c.Number.ShowMS <= 0 {
		errs = append(errs, fmt.Errorf("number.show_ms must be positive, got %d", c.Number.ShowMS))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
