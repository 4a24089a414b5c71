package fifteen

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Rows    int
	Cols    int
	Cells   []int // row-major, 0 is the blank
	Moves   int
	Solved  bool
	Auto    bool // autosolve animation in progress
	Pending int  // queued autosolver moves
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Rows:    g.rows,
		Cols:    g.cols,
		Cells:   g.board.Cells(),
		Moves:   g.mover.Steps(),
		Solved:  g.solved,
		Auto:    len(g.pending) > 0,
		Pending: len(g.pending),
	}
}
