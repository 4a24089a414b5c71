package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tileworks/fifteen/internal/puzzle"
)

// parseLayout builds a board from a whitespace-separated cell listing in
// row-major order. The blank may be written as 0, _, or *. When rows or cols
// is 0 the board is assumed square and the side is inferred from the cell
// count.
func parseLayout(layout string, rows, cols int) (*puzzle.Board, error) {
	fields := strings.Fields(layout)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty layout")
	}

	cells := make([]int, len(fields))
	for i, f := range fields {
		if f == "_" || f == "*" {
			cells[i] = puzzle.Blank
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad cell %q: %w", f, err)
		}
		cells[i] = v
	}

	if rows == 0 || cols == 0 {
		side := 2
		for side*side < len(cells) {
			side++
		}
		if side*side != len(cells) {
			return nil, fmt.Errorf("%d cells is not a square board, pass --rows and --cols", len(cells))
		}
		rows, cols = side, side
	}

	return puzzle.FromCells(rows, cols, cells)
}

// formatLayout renders a board as a single-line layout string, the inverse
// of parseLayout.
func formatLayout(b *puzzle.Board) string {
	cells := b.Cells()
	parts := make([]string, len(cells))
	for i, v := range cells {
		if v == puzzle.Blank {
			parts[i] = "_"
		} else {
			parts[i] = strconv.Itoa(v)
		}
	}
	return strings.Join(parts, " ")
}
