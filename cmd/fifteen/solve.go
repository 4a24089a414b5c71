package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tileworks/fifteen/internal/config"
	"github.com/tileworks/fifteen/internal/puzzle"
)

var (
	flagSolveRows     int
	flagSolveCols     int
	flagSolveConfig   string
	flagSolveSegments bool
	flagSolveQuiet    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [layout]",
	Short: "Solve a board headlessly and print the move sequence",
	Long: `Solve a board without the TUI and print the applied moves.

With a layout argument the given board is solved; without one a board is
scrambled from --seed and solved. The move sequence uses one letter per
move (U, D, L, R), each naming the direction the gap travels.

Layout cells are listed row by row; write the gap as 0, _, or *.

Examples:
  fifteen solve --seed 7
  fifteen solve --rows 5 --cols 3 --seed 7
  fifteen solve "1 2 3 4 5 6 8 7 _"
  fifteen solve --segments --seed 7
  fifteen solve --quiet --seed 7     # only the move string`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveRows, "rows", 0, "Board rows (0 = config default)")
	solveCmd.Flags().IntVar(&flagSolveCols, "cols", 0, "Board columns (0 = config default)")
	solveCmd.Flags().StringVar(&flagSolveConfig, "config", "", "Path to custom config YAML")
	solveCmd.Flags().BoolVar(&flagSolveSegments, "segments", false, "Print a per-phase breakdown of the solve")
	solveCmd.Flags().BoolVar(&flagSolveQuiet, "quiet", false, "Print only the move string")
}

func runSolve(cmd *cobra.Command, args []string) {
	board, err := solveBoard(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !puzzle.Solvable(board) {
		fmt.Fprintln(os.Stderr, "Error: board is not solvable")
		fmt.Fprintln(os.Stderr, "Run 'fifteen check --repair' to get a solvable variant.")
		os.Exit(1)
	}

	if !flagSolveQuiet {
		fmt.Printf("Board %dx%d:\n\n%s\n\n", board.Rows(), board.Cols(), indent(board.String()))
	}

	var segments []struct {
		phase string
		moves int
	}

	opts := puzzle.SolveOptions{}
	if flagSolveSegments {
		opts.OnSegment = func(phase string, moves []puzzle.Move) {
			segments = append(segments, struct {
				phase string
				moves int
			}{phase, len(moves)})
		}
	}

	sol, err := puzzle.Solve(board, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSolveQuiet {
		fmt.Println(puzzle.FormatMoves(sol.Moves))
		return
	}

	fmt.Printf("Solved in %d moves (%s)\n", sol.Steps, sol.Elapsed.Round(time.Microsecond))

	if flagSolveSegments {
		fmt.Println()
		for _, seg := range segments {
			fmt.Printf("  %-14s %d moves\n", seg.phase, seg.moves)
		}
	}

	if sol.Steps > 0 {
		fmt.Println()
		fmt.Println(puzzle.FormatMoves(sol.Moves))
	}
}

// solveBoard builds the board to solve from the layout argument or, absent
// one, from a seeded scramble.
func solveBoard(args []string) (*puzzle.Board, error) {
	appCfg, err := config.Load(flagSolveConfig)
	if err != nil {
		return nil, err
	}

	rows, cols := flagSolveRows, flagSolveCols

	if len(args) == 1 {
		return parseLayout(args[0], rows, cols)
	}

	if rows == 0 {
		rows = appCfg.Board.Rows
	}
	if cols == 0 {
		cols = appCfg.Board.Cols
	}
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("board %dx%d too small, need at least 2x2", rows, cols)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return puzzle.Scramble(rows, cols, seed), nil
}

// indent prefixes every line with two spaces.
func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
