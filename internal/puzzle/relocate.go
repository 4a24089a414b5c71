package puzzle

// relocate moves the tile holding value v into cell (i, j), leaving every
// cell of rows above i, and the already-placed leading cells of row i,
// untouched. It is the central placement primitive: first the tile is
// dragged to column j one nudge at a time, then raised to row i.
//
// The case split picks the recipe by where the blank has to approach from:
// same column or not, travel direction, and whether the tile sits on the
// bottom row. After every sub-step the tile may have reached (i, j)
// opportunistically, so each one is followed by a placed check.
func (s *solver) relocate(v, i, j int) {
	r, c := s.find(v)
	lastRow := s.b.rows - 1
	sameCol := true
	toRight := false

	if c != j {
		// Keep the blank off the destination row while the tile travels,
		// or the nudges would shove placed cells around.
		if s.b.blankRow() == i {
			s.step(MoveDown)
			if s.placed(v, i, j) {
				return
			}
			r, c = s.find(v)
		}
		sameCol = false
		toRight = c < j

		target := c - 1
		if toRight {
			target = c + 1
		}
		// If the blank shares the tile's row and would drag it while
		// sliding over, step off the row first.
		if s.b.blankRow() == r && s.blankCrosses(c, target) {
			if r < lastRow {
				s.step(MoveDown)
			} else {
				s.step(MoveUp)
			}
			if s.placed(v, i, j) {
				return
			}
		}
		s.blankToCol(target)
		if s.placed(v, i, j) {
			return
		}
		s.blankToRow(r)
		if s.placed(v, i, j) {
			return
		}

		// Blank is now horizontally adjacent on the trailing side. One
		// direct push, then one nudge per remaining column.
		if toRight {
			s.step(MoveLeft)
		} else {
			s.step(MoveRight)
		}
		if s.placed(v, i, j) {
			return
		}
		dist := j - c
		if !toRight {
			dist = c - j
		}
		for k := 2; k <= dist; k++ {
			s.macro(horizontalNudge(toRight, r == lastRow))
			if s.placed(v, i, j) {
				return
			}
		}
	}

	r, _ = s.find(v)
	if r == i {
		return
	}
	dr := r - i

	// Bring the blank directly above the tile without re-disturbing it.
	switch {
	case sameCol:
		if r != i+1 {
			// If the blank sits below the tile in the same column it would
			// drag the tile down while climbing; step aside first.
			if s.b.blankCol() == j && s.b.blankRow() > r {
				s.step(MoveRight)
				if s.placed(v, i, j) {
					return
				}
			}
			s.blankToRow(r - 1)
			if s.placed(v, i, j) {
				return
			}
			s.blankToCol(j)
			if s.placed(v, i, j) {
				return
			}
		} else if r < lastRow {
			// One row to go: detour below and around the right so the blank
			// never slides along row i itself.
			s.blankToRow(r + 1)
			if s.placed(v, i, j) {
				return
			}
			s.blankToCol(j + 1)
			if s.placed(v, i, j) {
				return
			}
			s.blankToRow(r - 1)
			if s.placed(v, i, j) {
				return
			}
			s.blankToCol(j)
			if s.placed(v, i, j) {
				return
			}
		} else {
			// Tile on the bottom row, one below its target: approach along
			// the destination row, which is still clear at this point.
			s.blankToRow(r - 1)
			s.blankToCol(j)
			if s.placed(v, i, j) {
				return
			}
		}
	case toRight:
		// Blank ended left of the tile; loop around the right side, which
		// is past column j and therefore never finalized.
		if r < lastRow {
			s.macro(raiseSetupRight)
		} else {
			s.step(MoveUp)
			if s.placed(v, i, j) {
				return
			}
			s.step(MoveRight)
		}
		if s.placed(v, i, j) {
			return
		}
	default:
		// Blank ended right of the tile; the cell above-right is free.
		s.step(MoveUp)
		if s.placed(v, i, j) {
			return
		}
		s.step(MoveLeft)
		if s.placed(v, i, j) {
			return
		}
	}

	// Push once, then one raise per remaining row.
	s.step(MoveDown)
	for k := 2; k <= dr; k++ {
		if s.placed(v, i, j) {
			return
		}
		s.macro(raiseTile)
	}
}

// blankCrosses reports whether sliding the blank along its row to column
// target passes over column c.
func (s *solver) blankCrosses(c, target int) bool {
	bc := s.b.blankCol()
	if bc < c {
		return target >= c
	}
	if bc > c {
		return target <= c
	}
	return false
}
