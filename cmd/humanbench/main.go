// humanbench is a collection of reflex and memory benchmarks played in the terminal.
//
// Usage:
//
//	humanbench               - Pick a game from the interactive menu
//	humanbench list          - List available games
//	humanbench play <game>   - Start a game directly, then return to the menu
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--config <path>       - Use a custom config file
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Append logs to a file
//	--debug               - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-humanbench/internal/games/number"
	_ "github.com/vovakirdan/tui-humanbench/internal/games/reaction"
	_ "github.com/vovakirdan/tui-humanbench/internal/games/verbal"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "humanbench",
	Short: "Human Benchmark - reflex and memory tests in your terminal",
	Long: `humanbench is a set of short benchmarks played in the terminal:

  Reaction Time  - press a key as soon as the screen turns green
  Verbal Memory  - tell seen words from new ones
  Number Memory  - recall ever longer numbers

Run without arguments to pick a game from the menu.

Examples:
  humanbench
  humanbench list
  humanbench play reaction
  humanbench play number --difficulty hard
  humanbench --config ./my-humanbench.yaml --log-file /tmp/humanbench.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession("")
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (default: discard)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
