// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the session
// controller to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-humanbench/internal/config"
	"github.com/vovakirdan/tui-humanbench/internal/core"
)

// ErrUnknownGame is returned by Create for IDs that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the core interface that all benchmark games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "reaction", "verbal").
	// Used for CLI commands and menu shortcuts.
	ID() string

	// Title returns a human-readable name for display (e.g., "Reaction Time").
	Title() string

	// Description returns a one-line explanation shown in the menu.
	Description() string

	// Reset initializes the game state for a new playthrough.
	// The RuntimeConfig provides screen dimensions.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame: a key press or a timer tick.
	// Returns the result of this frame including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game screen into the provided buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over).
	State() core.GameState

	// Result returns the outcome of the round. Only meaningful once
	// State().GameOver is true; the session fills in RoundID.
	Result() core.GameResult
}

// Deps are the collaborators handed to a game at construction.
type Deps struct {
	Rand     core.Rand
	Settings config.Config
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Order       int
}

// Factory is a function that creates a new instance of a game.
type Factory func(deps Deps) Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Order controls the position in menus and listings.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Get title by creating a temporary instance
	g := f(Deps{Rand: core.NewRand(1), Settings: config.Default()})
	entries[id] = entry{
		info: GameInfo{
			ID:          id,
			Title:       g.Title(),
			Description: g.Description(),
			Order:       order,
		},
		factory: f,
	}
}

// List returns information about all registered games, sorted by order then ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error wrapping ErrUnknownGame if the ID is not registered.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return e.factory(deps), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
