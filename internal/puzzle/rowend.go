package puzzle

// finishRow places the last two cells of row i. Solving them one at a time
// is impossible without breaking the rest of the row, so the corner tile is
// parked two rows down, its neighbor is staged directly below the corner,
// and a fixed closing recipe rotates both in off the last column.
//
// Requires at least two free rows below i; the orchestrator only calls this
// for rows up to M-4. Two-column boards have no leading tiles and the whole
// row is a pair, which takes a transposed procedure.
func (s *solver) finishRow(i int) {
	N := s.b.cols
	if N == 2 {
		s.finishRowPair(i)
		return
	}
	if s.b.blankRow() == i {
		s.step(MoveDown)
	}
	corner := s.b.GoalValue(i, N-1)
	neighbor := s.b.GoalValue(i, N-2)

	s.parkRowTail(i, corner)
	s.stageTailNeighbor(i, neighbor)
	s.placeTailCorner(i, corner)

	s.blankToCol(N - 2)
	s.blankToRow(i)
	s.macro(rowTailClose)
}

// parkRowTail lowers tile v to row i+2 in its current column, out of the way
// of the staging work on rows i and i+1. No-op if v already sits at row i+2
// or below.
func (s *solver) parkRowTail(i, v int) {
	r, c := s.find(v)
	if r >= i+2 {
		return
	}
	s.blankToRow(i + 2)
	s.blankToCol(c)
	s.blankToRow(r + 1)
	s.step(MoveUp)
	for k := 2; k <= i+2-r; k++ {
		s.macro(lowerTileNudge(c != s.b.cols-1))
	}
}

// stageTailNeighbor brings the tile for cell (i, N-2) to the staging cell
// (i+1, N-1), one below the row corner.
func (s *solver) stageTailNeighbor(i, v int) {
	N, M := s.b.cols, s.b.rows
	r, c := s.find(v)
	if c != N-1 {
		// Drive the tile right along its row into the last column. If the
		// blank shares the row and would slide over the tile, step off
		// first; upward is safe below the staging row, downward above it.
		if s.b.blankRow() == r && s.blankCrosses(c, c+1) {
			if r >= i+2 {
				s.step(MoveUp)
			} else {
				s.step(MoveDown)
			}
		}
		s.blankToCol(c + 1)
		s.blankToRow(r)
		s.step(MoveLeft)
		r, c = s.find(v)
		for k := c; k < N-1; k++ {
			s.macro(horizontalNudge(true, r == M-1))
		}
	}

	r, _ = s.find(v)
	switch {
	case r == i+1:
		// Already staged.
	case r == i:
		// The tile sits on its own row in the corner cell; drop it straight
		// down to staging.
		s.blankToCol(N - 2)
		s.blankToRow(i)
		s.macro(dropIntoRow)
	default:
		// Raise along the last column, looping the blank through N-2 so the
		// solved leading cells of row i stay untouched.
		s.blankToCol(N - 2)
		s.blankToRow(r)
		s.step(MoveUp)
		s.step(MoveRight)
		s.step(MoveDown)
		for k := 2; k <= r-(i+1); k++ {
			s.macro(raiseTileLastCol)
		}
	}
}

// placeTailCorner brings the row-corner tile v to (i+2, N-1), directly below
// the staged neighbor, without disturbing it. The staging work may have
// lifted v back above row i+2, so it is re-parked first.
func (s *solver) placeTailCorner(i, v int) {
	N, M := s.b.cols, s.b.rows
	s.parkRowTail(i, v)

	r, c := s.find(v)
	if c != N-1 {
		if s.b.blankRow() == r && s.blankCrosses(c, c+1) {
			// r >= i+2 after parking, so the row above is free to step into.
			s.step(MoveUp)
		}
		// Route the blank to the tile's right side. The (i+2, N-2) case must
		// loop in from below: cutting across column N-1 at row i+1 would
		// shove the staged neighbor out.
		if s.b.blankRow() != r || s.b.blankCol() != c+1 {
			switch {
			case c != N-2:
				s.blankToCol(c + 1)
				s.blankToRow(r)
			case r != i+2:
				s.blankToRow(r - 1)
				s.blankToCol(c + 1)
				s.blankToRow(r)
			default:
				s.blankToCol(c - 1)
				s.blankToRow(r + 1)
				s.blankToCol(c + 1)
				s.blankToRow(r)
			}
		}
		s.step(MoveLeft)
		r, c = s.find(v)
		for k := c; k < N-1; k++ {
			s.macro(horizontalNudge(true, r == M-1))
		}
	}

	r, _ = s.find(v)
	if r != i+2 {
		s.blankToCol(N - 2)
		s.blankToRow(r)
		s.step(MoveUp)
		s.step(MoveRight)
		s.step(MoveDown)
		for k := 2; k <= r-(i+2); k++ {
			s.macro(raiseTileLastCol)
		}
	}
}

// finishRowPair solves a full row of a two-column board. It is the bottom
// pair procedure turned on its side: the left tile is parked in the right
// column, the right tile is brought up beneath it, and the transposed pair
// recipes rotate both into the row.
func (s *solver) finishRowPair(i int) {
	left := s.b.GoalValue(i, 0)
	right := s.b.GoalValue(i, 1)

	r, c := s.find(left)
	if c != 1 {
		s.blankToCol(1)
		s.blankToRow(r)
		s.step(MoveLeft)
	}
	if r != i {
		s.blankToCol(0)
		s.blankToRow(r - 1)
		s.blankToCol(1)
		s.step(MoveDown)
		for k := r - 1; k > i; k-- {
			s.macro(raiseTileLastCol)
		}
	}

	r, c = s.find(right)
	switch {
	case r == i && c == 0:
		s.blankToCol(0)
		s.blankToRow(i + 1)
		s.macro(pairStackedAcross)
	case r == i+1 && c == 0 && s.b.At(i, 0) == Blank:
		s.macro(pairAdjacentAcross)
	default:
		if c != 1 {
			// Get the blank into the right column below the parked tile
			// before descending to the target.
			if s.b.blankCol() == 0 {
				if s.b.blankRow() == i {
					s.step(MoveDown)
				}
				s.step(MoveRight)
			}
			s.blankToRow(r)
			s.step(MoveLeft)
		}
		r, _ = s.find(right)
		if r != i+1 {
			s.blankToCol(0)
			s.blankToRow(r - 1)
			s.blankToCol(1)
			s.step(MoveDown)
			for k := r - 1; k > i+1; k-- {
				s.macro(raiseTileLastCol)
			}
		}
	}

	if s.b.At(i, 0) != left {
		s.blankToCol(0)
		s.blankToRow(i)
		s.step(MoveRight)
		s.step(MoveDown)
	}
}
