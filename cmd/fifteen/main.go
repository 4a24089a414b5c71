// fifteen is a terminal platform for the generalized sliding-tile puzzle.
//
// Usage:
//
//	fifteen list              - List available puzzle variants
//	fifteen play <puzzle>     - Play a puzzle in the terminal
//	fifteen menu              - Start menu to pick puzzles interactively
//	fifteen solve             - Solve a board headlessly and print the moves
//	fifteen check <layout>    - Check a board layout for solvability
//	fifteen serve             - Start SSH server for remote play
//	fifteen scores <puzzle>   - Show best solves for a puzzle
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible deals
//	--db <path>     - Set database path (default: ~/.fifteen/solves.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import puzzle variants to register them
	_ "github.com/tileworks/fifteen/internal/games/fifteen"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fifteen",
	Short: "Fifteen - sliding-tile puzzles in your terminal",
	Long: `Fifteen is a terminal platform for the classic sliding-tile puzzle
family: the 8-puzzle, the 15-puzzle, and any MxN board beyond them.

Available commands:
  list     - Show all available puzzle variants
  play     - Play a specific puzzle directly
  menu     - Interactive puzzle picker menu
  solve    - Solve a board headlessly and print the move sequence
  check    - Check a board layout for solvability
  serve    - Start SSH server for remote play
  scores   - View best solves

Examples:
  fifteen list
  fifteen play fifteen
  fifteen play fifteen --rows 5 --cols 6
  fifteen solve --rows 4 --cols 4 --seed 7
  fifteen check "1 2 3 4 5 6 7 8 _"
  fifteen serve --ssh :2222
  fifteen scores fifteen`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fifteen/solves.db", "Path to solves database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
