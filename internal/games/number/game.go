// Package number implements the Number Memory benchmark: a number is shown
// briefly and the player types it back. Each success adds digits.
package number

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-humanbench/internal/config"
	"github.com/vovakirdan/tui-humanbench/internal/core"
	"github.com/vovakirdan/tui-humanbench/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "number"

type view int

const (
	viewIntro    view = iota // Any key starts
	viewShowing              // Number visible, keys ignored
	viewInput                // Typing the answer
	viewSuccess              // Correct, any key continues
	viewFinished             // Mismatch, terminal
)

// Game implements Number Memory.
type Game struct {
	cfg config.NumberConfig
	rng core.Rand

	view     view
	level    int
	recalled int // Last level answered correctly, 0 if none
	target   string
	input    []rune
	deadline core.Deadline
	lastAns  string // Last submitted answer
	now      time.Time

	finishedAt time.Time

	screenW int
	screenH int
}

// New creates a Number Memory game.
func New(cfg config.NumberConfig, rng core.Rand) *Game {
	if rng == nil {
		rng = core.NewRand(0)
	}
	return &Game{cfg: cfg, rng: rng}
}

func init() {
	registry.Register(ID, 3, func(deps registry.Deps) registry.Game {
		return New(deps.Settings.Number, deps.Rand)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Number Memory"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Remember the longest number you can"
}

// Reset initializes the game state for a new playthrough.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.view = viewIntro
	g.level = max(g.cfg.StartLevel, 1)
	g.recalled = 0
	g.target = ""
	g.input = g.input[:0]
	g.deadline = core.Deadline{}
	g.lastAns = ""
	g.finishedAt = time.Time{}
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.now = in.Now

	switch g.view {
	case viewIntro, viewSuccess:
		if in.Pressed() {
			g.show(in.Now)
		}

	case viewShowing:
		if g.deadline.Reached(in.Now) {
			g.view = viewInput
		}

	case viewInput:
		if in.Pressed() {
			g.handleKey(in.Key, in.Now)
		}
	}

	return core.StepResult{State: g.State()}
}

// show generates the sequence for the current level and starts the display timer.
func (g *Game) show(now time.Time) {
	g.target = g.generate(g.cfg.Digits(g.level))
	g.input = g.input[:0]
	g.deadline = core.NewDeadline(now, g.cfg.ShowDuration())
	g.view = viewShowing
}

// generate returns a random digit string of length n without a leading zero.
func (g *Game) generate(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := range n {
		if i == 0 {
			sb.WriteByte(byte('1' + g.rng.Intn(9)))
			continue
		}
		sb.WriteByte(byte('0' + g.rng.Intn(10)))
	}
	return sb.String()
}

func (g *Game) handleKey(key core.KeyEvent, now time.Time) {
	if _, ok := key.Digit(); ok {
		g.input = append(g.input, key.Rune)
		return
	}

	switch key.Action {
	case core.ActionDelete:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
	case core.ActionConfirm:
		if len(g.input) > 0 {
			g.Submit(string(g.input), now)
		}
	}
}

// Submit checks an answer against the shown number.
// A match advances the level; a mismatch ends the game.
// Has no effect unless the game is waiting for input.
func (g *Game) Submit(answer string, now time.Time) {
	if g.view != viewInput {
		return
	}

	g.lastAns = answer
	if answer == g.target {
		g.recalled = g.level
		g.level++
		g.view = viewSuccess
		return
	}

	g.view = viewFinished
	g.finishedAt = now
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.level
}

// Target returns the number shown for the current level.
func (g *Game) Target() string {
	return g.target
}

// Input returns the digits typed so far.
func (g *Game) Input() string {
	return string(g.input)
}

// Recalled returns the last level answered correctly, 0 if none.
func (g *Game) Recalled() int {
	return g.recalled
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.recalled,
		GameOver: g.view == viewFinished,
	}
}

// Result returns the outcome of the finished game.
func (g *Game) Result() core.GameResult {
	return core.GameResult{
		GameID:   ID,
		Title:    g.Title(),
		Score:    g.recalled,
		Headline: fmt.Sprintf("Level %d", g.recalled),
		Summary: []string{
			fmt.Sprintf("Number:      %s", g.target),
			fmt.Sprintf("Your answer: %s", g.lastAns),
		},
		FinishedAt: g.finishedAt,
	}
}
