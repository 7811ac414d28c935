// Package verbal implements the Verbal Memory benchmark: words are shown one
// at a time and the player says whether each was seen before or is new.
package verbal

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-humanbench/internal/config"
	"github.com/vovakirdan/tui-humanbench/internal/core"
	"github.com/vovakirdan/tui-humanbench/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "verbal"

// Answer is the player's judgment of the current word.
type Answer int

const (
	AnswerSeen Answer = iota
	AnswerNew
)

// String returns the label shown on the answer button.
func (a Answer) String() string {
	if a == AnswerSeen {
		return "SEEN"
	}
	return "NEW"
}

type view int

const (
	viewIntro view = iota
	viewPlaying
	viewFinished
)

// Game implements Verbal Memory.
type Game struct {
	cfg config.VerbalConfig
	rng core.Rand

	view    view
	source  *wordSource
	seen    map[string]bool
	history []string // Seen words in presentation order, for random picks

	current     string
	currentSeen bool // Whether current was in the seen set when presented
	selection   Answer

	score      int // Correct answers, never reset during a game
	lives      int
	lastOK     bool
	answered   int
	finishedAt time.Time

	screenW int
	screenH int
}

// New creates a Verbal Memory game.
func New(cfg config.VerbalConfig, rng core.Rand) *Game {
	if rng == nil {
		rng = core.NewRand(0)
	}
	return &Game{cfg: cfg, rng: rng}
}

func init() {
	registry.Register(ID, 2, func(deps registry.Deps) registry.Game {
		return New(deps.Settings.Verbal, deps.Rand)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Verbal Memory"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	return "Keep as many words in short term memory as possible"
}

// Reset initializes the game state for a new playthrough.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.view = viewIntro
	g.source = newWordSource(g.rng, g.cfg.Words)
	g.seen = make(map[string]bool)
	g.history = g.history[:0]
	g.current = ""
	g.currentSeen = false
	g.selection = AnswerSeen
	g.score = 0
	g.lives = g.cfg.Lives
	g.answered = 0
	g.finishedAt = time.Time{}
}

// Step advances the game by one frame. Ticks do nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !in.Pressed() {
		return core.StepResult{State: g.State()}
	}

	switch g.view {
	case viewIntro:
		if in.Has(core.ActionConfirm) {
			g.present()
			g.view = viewPlaying
		}

	case viewPlaying:
		key := in.Key
		switch {
		case key.IsRune('s'):
			g.Answer(AnswerSeen, in.Now)
		case key.IsRune('n'):
			g.Answer(AnswerNew, in.Now)
		case in.Has(core.ActionLeft):
			g.selection = AnswerSeen
		case in.Has(core.ActionRight):
			g.selection = AnswerNew
		case in.Has(core.ActionConfirm):
			g.Answer(g.selection, in.Now)
		}
	}

	return core.StepResult{State: g.State()}
}

// present picks the next word: a repeat with probability RepeatChance when
// any word has been seen, otherwise a word never shown before.
func (g *Game) present() {
	if len(g.history) > 0 && g.rng.Float64() < g.cfg.RepeatChance {
		g.current = g.history[g.rng.Intn(len(g.history))]
		g.currentSeen = true
		return
	}

	w := g.source.next(func(w string) bool { return g.seen[w] })
	g.current = w
	g.currentSeen = false
	g.seen[w] = true
	g.history = append(g.history, w)
}

// Answer judges the current word. Returns true if the answer was correct.
// Has no effect outside of play.
func (g *Game) Answer(a Answer, now time.Time) bool {
	if g.view != viewPlaying {
		return false
	}

	g.answered++
	g.lastOK = (a == AnswerSeen) == g.currentSeen
	if g.lastOK {
		g.score++
	} else {
		g.lives--
	}

	if g.lives <= 0 {
		g.lives = 0
		g.view = viewFinished
		g.finishedAt = now
		return g.lastOK
	}

	g.present()
	return g.lastOK
}

// Current returns the word on screen and whether it had been seen before.
func (g *Game) Current() (string, bool) {
	return g.current, g.currentSeen
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.view == viewFinished,
	}
}

// Result returns the outcome of the finished game.
func (g *Game) Result() core.GameResult {
	return core.GameResult{
		GameID:   ID,
		Title:    g.Title(),
		Score:    g.score,
		Headline: fmt.Sprintf("%d words", g.score),
		Summary: []string{
			fmt.Sprintf("Words answered: %d", g.answered),
			fmt.Sprintf("Distinct words seen: %d", len(g.history)),
		},
		FinishedAt: g.finishedAt,
	}
}
