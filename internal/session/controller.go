// Package session drives the top-level flow of the program: the game menu,
// the active game and the result screen. It has no terminal dependencies;
// the platform layer feeds it frames and draws its screen.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-humanbench/internal/config"
	"github.com/vovakirdan/tui-humanbench/internal/core"
	"github.com/vovakirdan/tui-humanbench/internal/registry"
)

// Phase is the controller state.
type Phase int

const (
	PhaseMenu    Phase = iota // Choosing a game
	PhasePlaying              // A game is active
	PhaseResult               // Showing the last GameResult
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Options configures a Controller.
type Options struct {
	Runtime  core.RuntimeConfig
	Settings config.Config
	Logger   *log.Logger

	// NewRand creates the random source for each game. Defaults to core.NewRand.
	NewRand func(seed int64) core.Rand
	// NewRoundID names each playthrough. Defaults to a random UUID.
	NewRoundID func() string
}

// Controller is the menu/game/result state machine.
type Controller struct {
	runtime  core.RuntimeConfig
	settings config.Config
	logger   *log.Logger
	newRand  func(seed int64) core.Rand
	newID    func() string

	phase    Phase
	items    []registry.GameInfo
	cursor   int
	launches int64

	game    registry.Game
	roundID string
	result  core.GameResult
	hasRes  bool

	quit bool
}

// New creates a controller showing the menu.
func New(opts Options) *Controller {
	c := &Controller{
		runtime:  opts.Runtime,
		settings: opts.Settings,
		logger:   opts.Logger,
		newRand:  opts.NewRand,
		newID:    opts.NewRoundID,
		phase:    PhaseMenu,
		items:    registry.List(),
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.newRand == nil {
		c.newRand = func(seed int64) core.Rand { return core.NewRand(seed) }
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Items returns the menu entries.
func (c *Controller) Items() []registry.GameInfo {
	return c.items
}

// Cursor returns the highlighted menu index.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Game returns the active game, or nil outside of PhasePlaying.
func (c *Controller) Game() registry.Game {
	return c.game
}

// Result returns the most recent GameResult while it is on screen.
func (c *Controller) Result() (core.GameResult, bool) {
	return c.result, c.hasRes
}

// Quit reports whether the user asked to leave the program.
func (c *Controller) Quit() bool {
	return c.quit
}

// Resize updates the screen dimensions used by new games.
func (c *Controller) Resize(w, h int) {
	c.runtime.ScreenW = w
	c.runtime.ScreenH = h
}

// Start launches a game by ID.
// Panics if a game is already running.
func (c *Controller) Start(id string, now time.Time) error {
	if c.phase == PhasePlaying {
		panic(fmt.Sprintf("session: cannot start %q while %q is running", id, c.game.ID()))
	}

	c.launches++
	seed := c.runtime.Seed
	if seed != 0 {
		seed += c.launches - 1
	}

	g, err := registry.Create(id, registry.Deps{
		Rand:     c.newRand(seed),
		Settings: c.settings,
	})
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	g.Reset(c.runtime)
	c.game = g
	c.roundID = c.newID()
	c.result = core.GameResult{}
	c.hasRes = false
	c.phase = PhasePlaying

	for i, item := range c.items {
		if item.ID == id {
			c.cursor = i
		}
	}

	c.logger.Info("game started", "game", id, "round", c.roundID, "at", now.Format(time.RFC3339))
	return nil
}

// Step advances the controller by one frame.
func (c *Controller) Step(in core.InputFrame) {
	if c.quit {
		return
	}
	if in.Has(core.ActionQuit) {
		c.logger.Info("quit requested", "phase", c.phase)
		c.quit = true
		return
	}

	switch c.phase {
	case PhaseMenu:
		c.stepMenu(in)
	case PhasePlaying:
		c.stepPlaying(in)
	case PhaseResult:
		if in.Pressed() {
			c.toMenu()
		}
	}
}

func (c *Controller) stepMenu(in core.InputFrame) {
	if !in.Pressed() || len(c.items) == 0 {
		return
	}

	if d, ok := in.Key.Digit(); ok {
		if d >= 1 && d <= len(c.items) {
			c.launch(c.items[d-1].ID, in.Now)
		}
		return
	}

	switch in.Key.Action {
	case core.ActionUp:
		c.cursor = (c.cursor - 1 + len(c.items)) % len(c.items)
	case core.ActionDown:
		c.cursor = (c.cursor + 1) % len(c.items)
	case core.ActionConfirm:
		c.launch(c.items[c.cursor].ID, in.Now)
	case core.ActionBack:
		c.logger.Info("quit from menu")
		c.quit = true
	}
}

// launch starts a game chosen in the menu. Menu entries come from the
// registry, so a failure here is logged rather than surfaced.
func (c *Controller) launch(id string, now time.Time) {
	if err := c.Start(id, now); err != nil {
		c.logger.Error("cannot start game", "game", id, "error", err)
	}
}

func (c *Controller) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		c.logger.Info("game aborted", "game", c.game.ID(), "round", c.roundID)
		c.toMenu()
		return
	}

	res := c.game.Step(in)
	if !res.State.GameOver {
		return
	}

	result := c.game.Result()
	result.RoundID = c.roundID
	if result.FinishedAt.IsZero() {
		result.FinishedAt = in.Now
	}
	c.result = result
	c.hasRes = true
	c.game = nil
	c.phase = PhaseResult

	c.logger.Info("game finished",
		"game", result.GameID,
		"round", result.RoundID,
		"score", result.Score,
		"duration", result.Duration,
	)
}

// toMenu discards the active game and any result.
func (c *Controller) toMenu() {
	c.game = nil
	c.roundID = ""
	c.result = core.GameResult{}
	c.hasRes = false
	c.phase = PhaseMenu
	c.logger.Debug("back to menu")
}
