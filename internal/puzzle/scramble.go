package puzzle

import "math/rand"

// Scramble returns a rows x cols board shuffled from seed, repaired to a
// solvable configuration. The same seed always yields the same board.
func Scramble(rows, cols int, seed int64) *Board {
	cells := make([]int, rows*cols)
	for k := 0; k < len(cells)-1; k++ {
		cells[k] = k + 1
	}
	cells[len(cells)-1] = Blank

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	b, err := FromCells(rows, cols, cells)
	if err != nil {
		// cells is a permutation by construction
		panic(err)
	}
	Repair(b)
	return b
}
