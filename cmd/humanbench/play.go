package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-humanbench/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. When it ends, the menu is shown.

Controls:
  Esc/Q      - Abandon the game and return to the menu
  Ctrl+C     - Quit
  Ctrl+S     - Save a screenshot to ~/.humanbench/screenshots

  Reaction Time: any key when the screen turns green
  Verbal Memory: Left/A = seen, Right/D = new, Enter submits, S/N answer directly
  Number Memory: type the digits, Backspace deletes, Enter submits

Difficulty options:
  easy   - More lives, longer display, fewer reaction attempts
  normal - Default parameters
  hard   - One life, short display, wider reaction delay window

Examples:
  humanbench play reaction
  humanbench play verbal --difficulty easy
  humanbench play number --config ./my-humanbench.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q (run 'humanbench list' to see available games)", registry.ErrUnknownGame, gameID)
	}

	return runSession(gameID)
}
