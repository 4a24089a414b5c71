package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tileworks/fifteen/internal/puzzle"
)

var (
	flagCheckRows   int
	flagCheckCols   int
	flagCheckRepair bool
)

var checkCmd = &cobra.Command{
	Use:   "check <layout>",
	Short: "Check a board layout for solvability",
	Long: `Check whether a board layout can be solved.

Exactly half of all arrangements of a board are reachable by sliding
tiles; the other half can never be solved. The verdict comes from the
layout's permutation parity, adjusted by the gap's row on boards with an
even number of columns.

Layout cells are listed row by row; write the gap as 0, _, or *.

With --repair, an unsolvable layout is made solvable by swapping one
adjacent pair of tiles and the fixed layout is printed.

Examples:
  fifteen check "1 2 3 4 5 6 7 8 _"
  fifteen check "2 1 3 4 5 6 7 8 _"
  fifteen check --rows 3 --cols 4 "1 2 3 4 5 6 7 8 9 10 _ 11"
  fifteen check --repair "2 1 3 4 5 6 7 8 _"`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&flagCheckRows, "rows", 0, "Board rows (0 = assume square)")
	checkCmd.Flags().IntVar(&flagCheckCols, "cols", 0, "Board columns (0 = assume square)")
	checkCmd.Flags().BoolVar(&flagCheckRepair, "repair", false, "Swap one tile pair to make the layout solvable")
}

func runCheck(cmd *cobra.Command, args []string) {
	board, err := parseLayout(args[0], flagCheckRows, flagCheckCols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if puzzle.Solvable(board) {
		fmt.Printf("Board %dx%d is solvable.\n", board.Rows(), board.Cols())
		return
	}

	fmt.Printf("Board %dx%d is NOT solvable.\n", board.Rows(), board.Cols())

	if !flagCheckRepair {
		fmt.Println("Re-run with --repair to swap one tile pair and fix it.")
		os.Exit(1)
	}

	swaps := puzzle.Repair(board)
	fmt.Printf("Repaired with %d swap(s):\n\n", swaps)
	fmt.Println(formatLayout(board))
}
