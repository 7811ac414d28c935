package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible rounds, 0 = time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the duration of one tick.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the controller.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game reached its terminal state
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}

// GameResult is the outcome of one completed round of a game.
// It is built once when the game reaches its terminal state and never mutated.
type GameResult struct {
	RoundID    string        // Identifier assigned by the session for this playthrough
	GameID     string        // Registry ID of the game
	Title      string        // Display name of the game
	Score      int           // Numeric score (ms for reaction time, streak, level)
	Duration   time.Duration // Elapsed duration for timed games, zero otherwise
	Headline   string        // Large text for the result screen, e.g. "253 ms"
	Summary    []string      // Extra lines describing the round
	FinishedAt time.Time     // Instant of the frame that ended the round
}
