// Package reaction implements the Reaction Time benchmark: wait for the
// screen to turn green, then press a key as fast as possible.
package reaction

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-humanbench/internal/config"
	"github.com/vovakirdan/tui-humanbench/internal/core"
	"github.com/vovakirdan/tui-humanbench/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "reaction"

// view is the screen the game is showing.
type view int

const (
	viewIntro    view = iota // Instructions, any key starts
	viewRound                // Red or green box
	viewAttempt              // Result of the last attempt
	viewTooSoon              // Pressed before the signal
	viewFinished             // Terminal, the session shows the result
)

// Game implements Reaction Time.
type Game struct {
	cfg config.ReactionConfig
	rng core.Rand

	view     view
	round    Round
	attempts []time.Duration
	early    int // Presses before the signal

	finishedAt time.Time

	screenW int
	screenH int
}

// New creates a Reaction Time game.
func New(cfg config.ReactionConfig, rng core.Rand) *Game {
	if rng == nil {
		rng = core.NewRand(0)
	}
	return &Game{cfg: cfg, rng: rng}
}

func init() {
	registry.Register(ID, 1, func(deps registry.Deps) registry.Game {
		return New(deps.Settings.Reaction, deps.Rand)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Reaction Time"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Test your visual reflexes"
}

// Reset initializes the game state for a new playthrough.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.view = viewIntro
	g.round = Round{}
	g.attempts = g.attempts[:0]
	g.early = 0
	g.finishedAt = time.Time{}
}

// Step advances the game by one frame.
// A key is applied before the time update so a press can never land on a
// signal the player has not been shown yet.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.view {
	case viewIntro, viewAttempt, viewTooSoon:
		if in.Pressed() {
			g.startRound(in.Now)
		}

	case viewRound:
		if in.Pressed() {
			g.round.Press(in.Now)
			g.finishRound(in.Now)
		} else {
			g.round.Update(in.Now)
		}
	}

	return core.StepResult{State: g.State()}
}

// startRound begins a new round with a random delay.
func (g *Game) startRound(now time.Time) {
	delay := core.DurationBetween(g.rng, g.cfg.MinDelay(), g.cfg.MaxDelay())
	g.round = NewRound(now, delay)
	g.view = viewRound
}

// finishRound moves to the screen matching the round outcome.
func (g *Game) finishRound(now time.Time) {
	switch g.round.Phase() {
	case PhaseFailedEarly:
		g.early++
		g.view = viewTooSoon
	case PhaseReacted:
		g.attempts = append(g.attempts, g.round.Reaction())
		if len(g.attempts) >= g.cfg.Attempts {
			g.view = viewFinished
			g.finishedAt = now
			return
		}
		g.view = viewAttempt
	}
}

// Average returns the mean of the recorded attempts.
func (g *Game) Average() time.Duration {
	if len(g.attempts) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range g.attempts {
		total += d
	}
	return total / time.Duration(len(g.attempts))
}

// Attempts returns the recorded reaction times.
func (g *Game) Attempts() []time.Duration {
	return append([]time.Duration(nil), g.attempts...)
}

// State returns the current game state.
// Score is the running average in milliseconds.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.Average().Milliseconds()),
		GameOver: g.view == viewFinished,
	}
}

// Result returns the outcome of the finished game.
func (g *Game) Result() core.GameResult {
	avg := g.Average()

	summary := make([]string, 0, len(g.attempts)+1)
	for i, d := range g.attempts {
		summary = append(summary, fmt.Sprintf("Attempt %d: %d ms", i+1, d.Milliseconds()))
	}
	summary = append(summary, fmt.Sprintf("Too soon: %d", g.early))

	return core.GameResult{
		GameID:     ID,
		Title:      g.Title(),
		Score:      int(avg.Milliseconds()),
		Duration:   avg,
		Headline:   fmt.Sprintf("Average reaction time: %d ms", avg.Milliseconds()),
		Summary:    summary,
		FinishedAt: g.finishedAt,
	}
}
