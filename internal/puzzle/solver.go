package puzzle

import (
	"fmt"
	"time"
)

// SolveOptions configures a solve run. The zero value solves silently at
// full speed.
type SolveOptions struct {
	// Observer, if set, is called after every primitive move.
	Observer Observer

	// OnSegment, if set, is called once per solved phase (each finished row,
	// then the bottom block) with that phase's slice of the move log.
	OnSegment func(phase string, moves []Move)

	// Pace is a cosmetic delay applied after each primitive move.
	Pace time.Duration
}

// Solution is the result of a solve: the full move trace, its length, and
// the wall time spent. Replaying Moves against the original scrambled board
// reproduces the solved board exactly.
type Solution struct {
	Moves   []Move
	Steps   int
	Elapsed time.Duration
}

// Solve reduces b to ascending row-major order in place and returns the
// applied moves. It returns ErrUnsolvable without touching the board if the
// configuration is unreachable; Repair first in that case.
//
// The procedure is constructive, not a search: rows 0..M-4 are placed tile
// by tile with the row tail finished as a pair, the last three rows go
// through a dedicated path, the bottom two rows are placed column pair by
// column pair, and the final 2x2 block is rotated into place. Termination
// is bounded by a polynomial in M*N.
func Solve(b *Board, opts SolveOptions) (Solution, error) {
	if !Solvable(b) {
		return Solution{}, ErrUnsolvable
	}
	if b.Solved() {
		return Solution{}, nil
	}
	start := time.Now()
	mv := NewMover(b)
	mv.SetObserver(opts.Observer)
	mv.SetPace(opts.Pace)

	s := &solver{b: b, mv: mv, opts: opts}
	s.run()

	moves := mv.Log()
	return Solution{Moves: moves, Steps: len(moves), Elapsed: time.Since(start)}, nil
}

// solver carries the board and mover through one solve run. Its methods
// assume the case analysis guarantees every move's precondition, so a move
// failure is a genuine bug and panics rather than unwinding.
type solver struct {
	b        *Board
	mv       *Mover
	opts     SolveOptions
	segStart int
}

func (s *solver) run() {
	M, N := s.b.rows, s.b.cols

	for i := 0; i <= M-4; i++ {
		for j := 0; j <= N-3; j++ {
			v := s.b.GoalValue(i, j)
			for s.b.At(i, j) != v {
				s.relocate(v, i, j)
			}
		}
		s.finishRow(i)
		// The row tail can come out as a 3-cycle; one rotation of the 2x2
		// block below it resolves that.
		if !s.rowTailDone(i) {
			s.macro(quadRotation)
		}
		s.assertRowDone(i)
		s.report(fmt.Sprintf("row %d", i+1))
	}

	if M >= 3 {
		s.lastThreeRows()
	}
	s.solveBottomPairs()
	s.endgame()
	s.report("bottom block")
}

// endgame resolves the terminal 2x2 block: park the blank at the
// bottom-right corner, then rotate until the three tiles match. The block
// has exactly three non-trivial rotational states, so at most two
// applications are needed.
func (s *solver) endgame() {
	M, N := s.b.rows, s.b.cols
	s.blankToCol(N - 1)
	s.blankToRow(M - 1)
	for s.b.At(M-1, N-2) != s.b.GoalValue(M-1, N-2) ||
		s.b.At(M-2, N-1) != s.b.GoalValue(M-2, N-1) ||
		s.b.At(M-2, N-2) != s.b.GoalValue(M-2, N-2) {
		s.macro(quadRotation)
	}
}

// rowTailDone reports whether the trailing cells of row i (up to the last
// three) hold their goal values.
func (s *solver) rowTailDone(i int) bool {
	N := s.b.cols
	from := (i+1)*N - 3
	if from < i*N {
		from = i * N
	}
	for k := from; k < (i+1)*N; k++ {
		if s.b.Cell(k) != k+1 {
			return false
		}
	}
	return true
}

func (s *solver) assertRowDone(i int) {
	N := s.b.cols
	for k := i * N; k < (i+1)*N; k++ {
		if s.b.Cell(k) != k+1 {
			panic(fmt.Sprintf("puzzle: row %d not solved, cell %d holds %d", i, k, s.b.Cell(k)))
		}
	}
}

// report hands the current phase's slice of the move log to the segment
// callback, if any.
func (s *solver) report(phase string) {
	if s.opts.OnSegment != nil {
		s.opts.OnSegment(phase, s.mv.Log()[s.segStart:])
	}
	s.segStart = s.mv.Steps()
}

func (s *solver) step(m Move) {
	if err := s.mv.Step(m); err != nil {
		panic(fmt.Sprintf("puzzle: solver violated a move precondition: %v", err))
	}
}

func (s *solver) macro(seq []Move) {
	for _, m := range seq {
		s.step(m)
	}
}

// find returns the row and column of value v; a missing value is an
// invariant violation.
func (s *solver) find(v int) (int, int) {
	pos, err := s.b.Locate(v)
	if err != nil {
		panic(err)
	}
	return pos / s.b.cols, pos % s.b.cols
}

func (s *solver) placed(v, i, j int) bool {
	return s.b.At(i, j) == v
}

// blankToCol slides the blank horizontally along its row to column c.
func (s *solver) blankToCol(c int) {
	for d := s.b.blankCol() - c; d > 0; d-- {
		s.step(MoveLeft)
	}
	for d := c - s.b.blankCol(); d > 0; d-- {
		s.step(MoveRight)
	}
}

// blankToRow slides the blank vertically along its column to row r.
func (s *solver) blankToRow(r int) {
	for d := s.b.blankRow() - r; d > 0; d-- {
		s.step(MoveUp)
	}
	for d := r - s.b.blankRow(); d > 0; d-- {
		s.step(MoveDown)
	}
}
