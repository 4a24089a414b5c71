package puzzle

// inversions counts out-of-order pairs among the non-blank tiles in row-major
// order. Brute pairwise comparison is O((M*N)^2) but runs once per solve.
func inversions(b *Board) int {
	n := 0
	for i := 0; i < len(b.cells); i++ {
		if b.cells[i] == Blank {
			continue
		}
		for j := i + 1; j < len(b.cells); j++ {
			if b.cells[j] != Blank && b.cells[i] > b.cells[j] {
				n++
			}
		}
	}
	return n
}

// Solvable reports whether b is reachable from the solved board.
//
// With an odd column count the blank's vertical travel does not change
// inversion parity, so the configuration is solvable iff the inversion count
// is even. With an even column count each row the blank sits above the last
// row flips parity once, so inversions plus that distance must be even.
func Solvable(b *Board) bool {
	inv := inversions(b)
	if b.cols%2 == 1 {
		return inv%2 == 0
	}
	return (inv+(b.rows-1-b.blankRow()))%2 == 0
}

// Repair makes b solvable by swapping the first row-major adjacent pair of
// non-blank tiles, re-checking after each swap. A single adjacent
// transposition flips parity exactly once, so at most one swap is applied.
// Returns the number of swaps performed.
func Repair(b *Board) int {
	swaps := 0
	for !Solvable(b) {
		for i := 0; i+1 < len(b.cells); i++ {
			if b.cells[i] != Blank && b.cells[i+1] != Blank {
				b.cells[i], b.cells[i+1] = b.cells[i+1], b.cells[i]
				swaps++
				break
			}
		}
	}
	return swaps
}
