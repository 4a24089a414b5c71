// Package fifteen implements the sliding-tile puzzle as a playable game.
// Three board sizes are registered as separate variants; arbitrary sizes are
// available through the CLI flags.
package fifteen

import (
	"math/rand"

	"github.com/tileworks/fifteen/internal/core"
	"github.com/tileworks/fifteen/internal/puzzle"
	"github.com/tileworks/fifteen/internal/registry"
)

// Game implements a sliding-tile puzzle variant.
type Game struct {
	id    string
	title string
	rows  int
	cols  int

	rng  *rand.Rand
	seed int64 // seed of the current scramble, for restart
	tick uint64

	board *puzzle.Board
	mover *puzzle.Mover

	// Autosolve animation: remaining moves and the tick pacing between them.
	pending   []puzzle.Move
	autoEvery uint64
	lastAuto  uint64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	solved        bool
	solvedByAuto  bool
	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick
	solvedTick    uint64
}

// New creates a puzzle variant with the given default board size.
func New(id, title string, rows, cols int) *Game {
	return &Game{id: id, title: title, rows: rows, cols: cols}
}

func init() {
	registry.Register("eight", func() registry.Game {
		return New("eight", "Eight Puzzle (3x3)", 3, 3)
	})
	registry.Register("fifteen", func() registry.Game {
		return New("fifteen", "Fifteen Puzzle (4x4)", 4, 4)
	})
	registry.Register("twentyfour", func() registry.Game {
		return New("twentyfour", "Twenty-Four Puzzle (5x5)", 5, 5)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Rows returns the current board height.
func (g *Game) Rows() int { return g.rows }

// Cols returns the current board width.
func (g *Game) Cols() int { return g.cols }

// Reset scrambles a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Rows >= 2 && cfg.Cols >= 2 {
		g.rows = cfg.Rows
		g.cols = cfg.Cols
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	// Convert the per-move pacing from milliseconds to ticks.
	g.autoEvery = 1
	if cfg.PaceMS > 0 && cfg.TickRate > 0 {
		g.autoEvery = uint64(cfg.PaceMS*cfg.TickRate) / 1000
		if g.autoEvery == 0 {
			g.autoEvery = 1
		}
	}

	g.scramble(cfg.Seed)
	g.checkScreenSize()
}

// scramble deals a fresh board from the given seed and clears per-deal state.
func (g *Game) scramble(seed int64) {
	g.seed = seed
	g.tick = 0
	g.board = puzzle.Scramble(g.rows, g.cols, seed)
	g.mover = puzzle.NewMover(g.board)
	g.pending = nil
	g.lastAuto = 0
	g.solved = false
	g.solvedByAuto = false
	g.paused = false
	g.moveProcessed = false
	g.solvedTick = 0
}

// checkScreenSize checks if the screen is large enough for the board grid.
func (g *Game) checkScreenSize() {
	minW := g.cols*g.cellWidth() + 1
	minH := g.rows*cellHeight + 1 + 4 // grid + HUD
	screen := core.NewRect(0, 0, g.screenW, g.screenH)
	g.tooSmall = !screen.Contains(minW-1, minH-1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.scramble(g.seed)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionShuffle) {
		g.scramble(g.rng.Int63())
		return core.StepResult{State: g.State()}
	}

	if g.solved {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionSolve) && len(g.pending) == 0 {
		g.startAutosolve()
	}

	if len(g.pending) > 0 {
		g.stepAutosolve()
	} else {
		g.processSlide(in)
	}

	if g.board.Solved() && !g.solved {
		g.solved = true
		g.solvedTick = g.tick
	}

	return core.StepResult{State: g.State()}
}

// startAutosolve computes the full move sequence on a clone of the current
// board and queues it for animated playback.
func (g *Game) startAutosolve() {
	sol, err := puzzle.Solve(g.board.Clone(), puzzle.SolveOptions{})
	if err != nil {
		// Scrambled boards are always reachable; nothing to animate.
		return
	}
	g.pending = sol.Moves
	g.lastAuto = g.tick
	g.solvedByAuto = true
}

// stepAutosolve applies the next queued move when its tick arrives.
func (g *Game) stepAutosolve() {
	if g.tick-g.lastAuto < g.autoEvery {
		return
	}
	g.lastAuto = g.tick
	if err := g.mover.Step(g.pending[0]); err != nil {
		// The queued sequence was computed against this exact board, so a
		// rejected move means the queue is stale. Drop it.
		g.pending = nil
		return
	}
	g.pending = g.pending[1:]
}

// processSlide maps directional input to a blank move. The key names the
// direction a tile slides, which is the opposite of the blank's travel.
func (g *Game) processSlide(in core.InputFrame) {
	var m puzzle.Move
	pressed := false

	switch {
	case in.Has(core.ActionUp):
		m = puzzle.MoveDown
		pressed = true
	case in.Has(core.ActionDown):
		m = puzzle.MoveUp
		pressed = true
	case in.Has(core.ActionLeft):
		m = puzzle.MoveRight
		pressed = true
	case in.Has(core.ActionRight):
		m = puzzle.MoveLeft
		pressed = true
	}

	if !pressed || g.moveProcessed {
		return
	}
	g.moveProcessed = true

	// A slide against the board edge is simply ignored.
	_ = g.mover.Step(m)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:  g.mover.Steps(),
		Solved: g.solved,
		Paused: g.paused || g.tooSmall,
		Auto:   len(g.pending) > 0,
	}
}

// SolvedByAuto reports whether the autosolver finished the current deal.
func (g *Game) SolvedByAuto() bool {
	return g.solvedByAuto
}

// SolvedTick returns the tick at which the current deal was solved, 0 if it
// is still in progress.
func (g *Game) SolvedTick() uint64 {
	return g.solvedTick
}
