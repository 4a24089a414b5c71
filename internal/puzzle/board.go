// Package puzzle implements the generalized MxN sliding-tile puzzle: board
// state, the closed-form solvability test, and a constructive autosolver that
// reduces any solvable configuration to ascending row-major order.
//
// The solver is not a search: it places tiles row by row through fixed,
// named move recipes, so it guarantees termination and correctness but not
// move-count optimality.
package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Blank is the value of the single empty cell.
const Blank = 0

var (
	// ErrNotFound is returned by Locate for a value absent from the board.
	// Given a valid board this indicates an invariant violation.
	ErrNotFound = errors.New("puzzle: value not on board")

	// ErrOutOfBounds is returned when a move would slide the blank past the
	// grid boundary. Callers are expected to validate direction feasibility,
	// so inside the solver this is treated as a programming error.
	ErrOutOfBounds = errors.New("puzzle: move out of bounds")

	// ErrUnsolvable is returned by Solve for a configuration that is not
	// reachable from the solved state. Repair the board first.
	ErrUnsolvable = errors.New("puzzle: board is not solvable")
)

// Board is an MxN grid in row-major order. Cell values are 1..M*N-1 plus one
// Blank. The blank position is cached and kept current by apply, so only the
// Mover mutates a Board during solving.
type Board struct {
	rows  int
	cols  int
	cells []int
	blank int // index of the blank cell
}

// New returns a solved rowsxcols board: cell k holds k+1, last cell blank.
// Panics if either dimension is below 2.
func New(rows, cols int) *Board {
	if rows < 2 || cols < 2 {
		panic(fmt.Sprintf("puzzle: board %dx%d too small", rows, cols))
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
		blank: rows*cols - 1,
	}
	for k := 0; k < len(b.cells)-1; k++ {
		b.cells[k] = k + 1
	}
	return b
}

// FromCells builds a board from an explicit row-major cell slice.
// The slice must be a permutation of 1..rows*cols-1 plus one Blank.
func FromCells(rows, cols int, cells []int) (*Board, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("puzzle: board %dx%d too small", rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("puzzle: got %d cells, want %d", len(cells), rows*cols)
	}
	seen := make([]bool, len(cells))
	blank := -1
	for i, v := range cells {
		if v == Blank {
			if blank >= 0 {
				return nil, fmt.Errorf("puzzle: duplicate blank at cell %d", i)
			}
			blank = i
			continue
		}
		if v < 1 || v >= len(cells) {
			return nil, fmt.Errorf("puzzle: cell %d holds %d, want 1..%d", i, v, len(cells)-1)
		}
		if seen[v] {
			return nil, fmt.Errorf("puzzle: duplicate value %d", v)
		}
		seen[v] = true
	}
	if blank < 0 {
		return nil, errors.New("puzzle: no blank cell")
	}
	b := &Board{rows: rows, cols: cols, cells: append([]int(nil), cells...), blank: blank}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Len returns the total number of cells.
func (b *Board) Len() int { return len(b.cells) }

// At returns the value at row r, column c.
func (b *Board) At(r, c int) int { return b.cells[r*b.cols+c] }

// Cell returns the value at row-major index i.
func (b *Board) Cell(i int) int { return b.cells[i] }

// Cells returns a copy of the row-major cell slice.
func (b *Board) Cells() []int { return append([]int(nil), b.cells...) }

// BlankIndex returns the row-major index of the blank cell.
func (b *Board) BlankIndex() int { return b.blank }

func (b *Board) blankRow() int { return b.blank / b.cols }
func (b *Board) blankCol() int { return b.blank % b.cols }

// Locate returns the row-major index of v. The blank is answered from the
// cached position; tiles are found by linear scan.
func (b *Board) Locate(v int) (int, error) {
	if v == Blank {
		return b.blank, nil
	}
	for i, cv := range b.cells {
		if cv == v {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrNotFound, v)
}

// GoalValue returns the value that belongs at row r, column c in the solved
// board (Blank for the bottom-right cell).
func (b *Board) GoalValue(r, c int) int {
	k := r*b.cols + c
	if k == len(b.cells)-1 {
		return Blank
	}
	return k + 1
}

// Solved reports whether every cell holds its goal value.
func (b *Board) Solved() bool {
	for k := 0; k < len(b.cells)-1; k++ {
		if b.cells[k] != k+1 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: append([]int(nil), b.cells...),
		blank: b.blank,
	}
}

// apply slides the blank one step in direction m, swapping it with the
// adjacent tile. It is the only mutation of the grid; everything else goes
// through the Mover so the move log stays complete.
func (b *Board) apply(m Move) error {
	r, c := b.blankRow(), b.blankCol()
	switch m {
	case MoveUp:
		r--
	case MoveDown:
		r++
	case MoveLeft:
		c--
	case MoveRight:
		c++
	default:
		return fmt.Errorf("puzzle: unknown move %d", int(m))
	}
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return fmt.Errorf("%w: %s from cell %d on %dx%d", ErrOutOfBounds, m, b.blank, b.rows, b.cols)
	}
	ni := r*b.cols + c
	b.cells[b.blank] = b.cells[ni]
	b.cells[ni] = Blank
	b.blank = ni
	return nil
}

// String renders the grid with right-aligned values and a dot for the blank.
func (b *Board) String() string {
	width := len(fmt.Sprint(len(b.cells) - 1))
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v := b.At(r, c); v == Blank {
				sb.WriteString(strings.Repeat(" ", width-1) + "*")
			} else {
				fmt.Fprintf(&sb, "%*d", width, v)
			}
		}
	}
	return sb.String()
}
