package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tileworks/fifteen/internal/registry"
	"github.com/tileworks/fifteen/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <puzzle>",
	Short: "Show best solves for a puzzle",
	Long: `Display the best recorded solves for the specified puzzle,
ordered by fewest moves, or the most recent ones with --recent.

Examples:
  fifteen scores fifteen
  fifteen scores eight --limit 25
  fifteen scores fifteen --recent`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many solves to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent solves instead of the best")
}

func runScores(cmd *cobra.Command, args []string) {
	puzzleID := args[0]

	// Check if puzzle exists
	if !registry.Exists(puzzleID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", puzzleID)
		fmt.Fprintln(os.Stderr, "Run 'fifteen list' to see available puzzles.")
		os.Exit(1)
	}

	// Get puzzle title
	game, err := registry.Create(puzzleID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get solves
	var solves []storage.SolveRecord
	heading := "Best Solves"
	if flagScoresRecent {
		heading = "Recent Solves"
		solves, err = store.RecentSolves(puzzleID, flagScoresLimit)
	} else {
		solves, err = store.BestSolves(puzzleID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	// Display solves
	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'fifteen play %s' to record the first one!\n", puzzleID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-6s  %-9s  %-5s  %s\n", "Rank", "Moves", "By", "Duration", "Size", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-9s  %-5s  %s\n", "----", "-----", "--", "--------", "----", "----")

	// Print solves
	for i, rec := range solves {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		sizeStr := fmt.Sprintf("%dx%d", rec.Rows, rec.Cols)
		durStr := fmt.Sprintf("%.1fs", float64(rec.DurationMS)/1000)
		fmt.Printf("  %-4d  %-7d  %-6s  %-9s  %-5s  %s\n", i+1, rec.Moves, rec.SolvedBy, durStr, sizeStr, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	if stats, err := store.Stats(puzzleID); err == nil && stats.Count > 0 {
		fmt.Printf("Solves: %d   Best: %d moves   Average: %.1f moves\n",
			stats.Count, stats.BestMoves, stats.AvgMoves)
	}
}
