package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tileworks/fifteen/internal/config"
	"github.com/tileworks/fifteen/internal/core"
	"github.com/tileworks/fifteen/internal/platform/tui"
	"github.com/tileworks/fifteen/internal/registry"
	"github.com/tileworks/fifteen/internal/storage"
)

var (
	flagConfig string
	flagRows   int
	flagCols   int
)

var playCmd = &cobra.Command{
	Use:   "play <puzzle>",
	Short: "Play a puzzle",
	Long: `Start playing the specified puzzle variant.

Controls:
  Arrows/WASD - Slide a tile into the gap
  Space/V     - Let the autosolver finish the board
  N           - New shuffle
  R           - Restart the same deal
  P/Esc       - Pause
  Q/Ctrl+C    - Quit

Board size:
  Each variant has a default size (eight is 3x3, fifteen is 4x4,
  twentyfour is 5x5). Override it with --rows and --cols; any size
  from 2x2 upward works.

Examples:
  fifteen play fifteen
  fifteen play eight
  fifteen play fifteen --rows 5 --cols 6
  fifteen play fifteen --seed 42
  fifteen play fifteen --config ./my-fifteen.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (0 = variant default)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (0 = variant default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if puzzle exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fifteen list' to see available puzzles.")
		os.Exit(1)
	}

	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Rows:     flagRows,
		Cols:     flagCols,
		PaceMS:   appCfg.Solver.PaceMS,
	}

	// Create puzzle instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
		os.Exit(1)
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
