package puzzle

// lastThreeRows finishes row M-3. The leading tiles go in with the generic
// relocator, but the final two cells need all three remaining rows as
// working space: the corner tile is parked one cell left of its goal, the
// tile for (M-3, N-2) is brought directly underneath, and both rotate in
// off the last column.
func (s *solver) lastThreeRows() {
	M, N := s.b.rows, s.b.cols
	i := M - 3
	for j := 0; j <= N-3; j++ {
		v := s.b.GoalValue(i, j)
		for s.b.At(i, j) != v {
			s.relocate(v, i, j)
		}
	}

	corner := s.b.GoalValue(i, N-1)
	for s.b.At(i, N-2) != corner {
		s.relocate(corner, i, N-2)
	}

	neighbor := s.b.GoalValue(i, N-2)
	// The parking above can leave the blank on the row's one open cell
	// (i, N-1); step it out before routing. If the neighbor sits directly
	// below, stepping down stages it into the rescue position.
	if s.b.blankRow() == i {
		s.step(MoveDown)
		if s.b.At(i, N-1) == neighbor {
			s.step(MoveLeft)
		}
	}
	r, c := s.find(neighbor)
	if r == i && c == N-1 {
		// The neighbor landed on the open cell above the parked corner; no
		// pairwise move fixes that without breaking the corner, so a fixed
		// three-row rotation resolves both tiles at once.
		s.blankToCol(N - 2)
		s.blankToRow(M - 2)
		s.macro(cornerRescue)
		return
	}
	for s.b.At(M-2, N-2) != neighbor {
		s.relocate(neighbor, M-2, N-2)
	}
	s.blankToRow(M - 1)
	s.blankToCol(N - 1)
	s.blankToRow(i)
	s.step(MoveLeft)
	s.step(MoveDown)
}

// solveBottomPairs places the bottom two rows column by column, left to
// right up to N-3. Single tiles cannot be finished down here without
// breaking their column, so each pair goes in together: the upper tile is
// parked on the bottom row, the lower tile is brought next to it, and a
// fixed recipe rotates the pair into place.
func (s *solver) solveBottomPairs() {
	M, N := s.b.rows, s.b.cols
	for i := 0; i <= N-3; i++ {
		upper := s.b.GoalValue(M-2, i)
		lower := s.b.GoalValue(M-1, i)

		r, c := s.find(upper)
		if r != M-1 {
			s.blankToRow(M - 1)
			s.blankToCol(c)
			s.step(MoveUp)
		}
		if c != i {
			s.blankToRow(M - 2)
			s.blankToCol(c - 1)
			s.blankToRow(M - 1)
			s.step(MoveRight)
			for k := c - 1; k > i; k-- {
				s.macro(nudgeLeftBottom)
			}
		}

		r, c = s.find(lower)
		switch {
		case r == M-2 && c == i:
			// Lower tile stacked right on top of the parked upper.
			s.blankToRow(M - 2)
			s.blankToCol(i + 1)
			s.macro(pairStacked)
		case r == M-2 && c == i+1 && s.b.At(M-2, i) == Blank:
			s.macro(pairAdjacent)
		default:
			if r != M-1 {
				// Get the blank onto the bottom row without lifting the
				// parked upper tile back out.
				if s.b.blankRow() == M-2 {
					if s.b.blankCol() == i {
						s.step(MoveRight)
					}
					s.step(MoveDown)
				}
				s.blankToCol(c)
				s.step(MoveUp)
			}
			r, c = s.find(lower)
			if c != i+1 {
				s.blankToRow(M - 2)
				s.blankToCol(c - 1)
				s.blankToRow(M - 1)
				s.step(MoveRight)
				for k := c - 1; k > i+1; k-- {
					s.macro(nudgeLeftBottom)
				}
			}
		}

		if s.b.At(M-2, i) != upper {
			s.blankToRow(M - 2)
			s.blankToCol(i)
			s.step(MoveDown)
			s.step(MoveRight)
		}
	}
}
