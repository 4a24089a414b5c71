package puzzle

import (
	"fmt"
	"testing"
)

func TestSolvableKnownCases(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		cols  int
		cells []int
		want  bool
	}{
		{"3x3 solved", 3, 3, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, true},
		{"3x3 leading swap", 3, 3, []int{2, 1, 3, 4, 5, 6, 7, 8, 0}, false},
		{"3x3 double swap", 3, 3, []int{2, 1, 3, 4, 5, 6, 8, 7, 0}, true},
		{"4x4 solved", 4, 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}, true},
		{"4x4 loyd 14-15 swap", 4, 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0}, false},
		{"4x4 blank moved left", 4, 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15}, true},
		{"2x3 solved", 2, 3, []int{1, 2, 3, 4, 5, 0}, true},
		{"2x3 tail swap", 2, 3, []int{1, 2, 3, 5, 4, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows, tt.cols, tt.cells)
			if got := Solvable(b); got != tt.want {
				t.Errorf("Solvable = %v, want %v", got, tt.want)
			}
		})
	}
}

// reachableStates walks the full move graph from the solved board and returns
// the set of reachable configurations.
func reachableStates(rows, cols int) map[string]bool {
	start := New(rows, cols)
	seen := map[string]bool{stateKey(start.Cells()): true}
	queue := []*Board{start}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, m := range []Move{MoveUp, MoveDown, MoveLeft, MoveRight} {
			nb := b.Clone()
			if err := NewMover(nb).Step(m); err != nil {
				continue
			}
			k := stateKey(nb.Cells())
			if !seen[k] {
				seen[k] = true
				queue = append(queue, nb)
			}
		}
	}
	return seen
}

func stateKey(cells []int) string { return fmt.Sprint(cells) }

func forEachPermutation(p []int, k int, visit func([]int)) {
	if k == len(p) {
		visit(p)
		return
	}
	for i := k; i < len(p); i++ {
		p[k], p[i] = p[i], p[k]
		forEachPermutation(p, k+1, visit)
		p[k], p[i] = p[i], p[k]
	}
}

// The closed-form parity test must agree with brute-force reachability on
// every configuration. Small boards cover both the odd and even column
// formulas exhaustively.
func TestSolvableMatchesReachability(t *testing.T) {
	sizes := []struct{ rows, cols int }{{2, 2}, {2, 3}, {3, 2}}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz.rows, sz.cols), func(t *testing.T) {
			reach := reachableStates(sz.rows, sz.cols)
			n := sz.rows * sz.cols

			p := make([]int, n)
			for i := 0; i < n-1; i++ {
				p[i] = i + 1
			}
			total, solvable := 0, 0
			forEachPermutation(p, 0, func(cells []int) {
				b := mustBoard(t, sz.rows, sz.cols, cells)
				want := reach[stateKey(cells)]
				if got := Solvable(b); got != want {
					t.Errorf("board %v: Solvable = %v, reachable = %v", cells, got, want)
				}
				total++
				if want {
					solvable++
				}
			})
			if solvable*2 != total {
				t.Errorf("reachable states: %d of %d, want exactly half", solvable, total)
			}
		})
	}
}

func TestRepair(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		cols      int
		cells     []int
		wantSwaps int
	}{
		{"already solvable", 3, 3, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, 0},
		{"leading swap", 3, 3, []int{2, 1, 3, 4, 5, 6, 7, 8, 0}, 1},
		{"blank first", 3, 3, []int{0, 1, 2, 4, 5, 6, 7, 8, 3}, 1},
		{"loyd", 4, 4, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows, tt.cols, tt.cells)
			if got := Repair(b); got != tt.wantSwaps {
				t.Errorf("Repair = %d swaps, want %d", got, tt.wantSwaps)
			}
			if !Solvable(b) {
				t.Error("board still unsolvable after Repair")
			}
			if tt.wantSwaps == 0 {
				for i, v := range b.Cells() {
					if v != tt.cells[i] {
						t.Fatalf("Repair touched a solvable board: %v", b.Cells())
					}
				}
			}
		})
	}
}
