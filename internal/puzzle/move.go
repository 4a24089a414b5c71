package puzzle

import (
	"strings"
	"time"
)

// Move is one primitive blank slide. All moves are defined from the blank's
// point of view: MoveUp swaps the blank with the cell above it.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// String returns the single-letter symbol used in move logs.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "U"
	case MoveDown:
		return "D"
	case MoveLeft:
		return "L"
	case MoveRight:
		return "R"
	default:
		return "?"
	}
}

// FormatMoves renders a move sequence as a compact symbol string, e.g. "ULDR".
func FormatMoves(moves []Move) string {
	var sb strings.Builder
	sb.Grow(len(moves))
	for _, m := range moves {
		sb.WriteString(m.String())
	}
	return sb.String()
}

// Observer is notified after every primitive move. It is purely
// observational: the solve result is identical whether or not one is wired.
type Observer func(b *Board, m Move)

// Mover is the only component that mutates a Board. It slides the blank one
// step at a time, appends each move to the log, and invokes the optional
// observer and pacing delay after every step.
type Mover struct {
	board    *Board
	log      []Move
	observer Observer
	pace     time.Duration
}

// NewMover wraps b in a mover with an empty move log.
func NewMover(b *Board) *Mover {
	return &Mover{board: b}
}

// SetObserver installs fn to be called after each primitive move.
func (mv *Mover) SetObserver(fn Observer) { mv.observer = fn }

// SetPace installs a cosmetic delay applied after each primitive move.
// It must not and does not affect the outcome.
func (mv *Mover) SetPace(d time.Duration) { mv.pace = d }

// Board returns the board this mover mutates.
func (mv *Mover) Board() *Board { return mv.board }

// Step applies one primitive move, logging it on success.
func (mv *Mover) Step(m Move) error {
	if err := mv.board.apply(m); err != nil {
		return err
	}
	mv.log = append(mv.log, m)
	if mv.observer != nil {
		mv.observer(mv.board, m)
	}
	if mv.pace > 0 {
		time.Sleep(mv.pace)
	}
	return nil
}

// Macro applies a fixed sequence of primitive moves as one recipe.
// Equivalent to repeated Step calls; it exists as a composition convenience.
func (mv *Mover) Macro(seq []Move) error {
	for _, m := range seq {
		if err := mv.Step(m); err != nil {
			return err
		}
	}
	return nil
}

// Log returns the moves applied so far, oldest first.
func (mv *Mover) Log() []Move { return mv.log }

// Steps returns the number of moves applied so far.
func (mv *Mover) Steps() int { return len(mv.log) }
