package fifteen

import (
	"strings"
	"testing"

	"github.com/tileworks/fifteen/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New("fifteen", "Fifteen Puzzle (4x4)", 4, 4)
	g.Reset(testConfig(seed))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func equalCells(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResetDeterministic(t *testing.T) {
	g1 := newTestGame(t, 42)
	g2 := newTestGame(t, 42)

	if !equalCells(g1.Snapshot().Cells, g2.Snapshot().Cells) {
		t.Errorf("Same seed should produce the same deal:\n%v\n%v",
			g1.Snapshot().Cells, g2.Snapshot().Cells)
	}

	g3 := newTestGame(t, 43)
	if equalCells(g1.Snapshot().Cells, g3.Snapshot().Cells) {
		t.Error("Different seeds should produce different deals")
	}
}

func TestSlideMovesOneTile(t *testing.T) {
	g := newTestGame(t, 1)

	before := g.Snapshot().Cells
	blank := indexOf(before, 0)
	blankRow := blank / g.Cols()

	// Pick a direction that is legal for where the blank is.
	action := core.ActionUp // tile below the blank slides up
	if blankRow == g.Rows()-1 {
		action = core.ActionDown
	}

	g.Step(frame(action))

	snap := g.Snapshot()
	if snap.Moves != 1 {
		t.Errorf("Moves = %d after one slide, expected 1", snap.Moves)
	}
	if equalCells(before, snap.Cells) {
		t.Error("Board should change after a legal slide")
	}
}

func TestSlideAgainstEdgeIgnored(t *testing.T) {
	g := newTestGame(t, 1)

	before := g.Snapshot().Cells
	blank := indexOf(before, 0)
	blankRow := blank / g.Cols()

	// Pick a direction with no tile to slide into the blank.
	action := core.ActionUp // needs a tile below the blank
	if blankRow < g.Rows()-1 {
		action = core.ActionDown // needs a tile above the blank
		if blankRow > 0 {
			t.Skipf("blank at row %d has neighbors on both sides", blankRow)
		}
	}

	g.Step(frame(action))

	snap := g.Snapshot()
	if snap.Moves != 0 {
		t.Errorf("Moves = %d after an edge slide, expected 0", snap.Moves)
	}
	if !equalCells(before, snap.Cells) {
		t.Error("Board should not change on an edge slide")
	}
}

func TestAutosolveCompletes(t *testing.T) {
	g := newTestGame(t, 7)

	g.Step(frame(core.ActionSolve))
	if !g.Snapshot().Auto {
		t.Fatal("Autosolve should be queued after the solve action")
	}

	// One queued move per tick at zero pace.
	for i := 0; i < 100_000 && !g.State().Solved; i++ {
		g.Step(frame())
	}

	state := g.State()
	if !state.Solved {
		t.Fatal("Autosolve did not finish")
	}
	if !g.SolvedByAuto() {
		t.Error("SolvedByAuto() should be true after an autosolve")
	}
	if state.Moves == 0 {
		t.Error("Autosolve should have applied moves")
	}

	cells := g.Snapshot().Cells
	for i := 0; i < len(cells)-1; i++ {
		if cells[i] != i+1 {
			t.Fatalf("cell %d = %d, expected %d", i, cells[i], i+1)
		}
	}
}

func TestAutosolvePacing(t *testing.T) {
	cfg := testConfig(7)
	cfg.PaceMS = 50 // 3 ticks at 60 fps

	g := New("fifteen", "Fifteen Puzzle (4x4)", 4, 4)
	g.Reset(cfg)

	g.Step(frame(core.ActionSolve))
	queued := g.Snapshot().Pending
	if queued == 0 {
		t.Fatal("Autosolve should be queued")
	}

	// Three ticks per move, so six ticks drain exactly two moves.
	for i := 0; i < 6; i++ {
		g.Step(frame())
	}
	if got := g.Snapshot().Pending; got != queued-2 {
		t.Errorf("Pending = %d after 6 ticks, expected %d", got, queued-2)
	}
}

func TestManualInputIgnoredDuringAutosolve(t *testing.T) {
	g := newTestGame(t, 7)

	g.Step(frame(core.ActionSolve))
	movesBefore := g.State().Moves

	g.Step(frame(core.ActionLeft))

	// The tick consumed one queued autosolver move, not the manual slide.
	if got := g.State().Moves; got != movesBefore+1 {
		t.Errorf("Moves = %d, expected %d (one autosolver move)", got, movesBefore+1)
	}
	if !g.Snapshot().Auto {
		t.Error("Autosolve should still be running")
	}
}

func TestPauseBlocksSlides(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionDown))
	if got := g.State().Moves; got != 0 {
		t.Errorf("Moves = %d while paused, expected 0", got)
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Game should resume after a second pause press")
	}
}

func TestShuffleDealsNewBoard(t *testing.T) {
	g := newTestGame(t, 1)
	before := g.Snapshot().Cells

	g.Step(frame(core.ActionShuffle))

	snap := g.Snapshot()
	if equalCells(before, snap.Cells) {
		t.Error("Shuffle should deal a different board")
	}
	if snap.Moves != 0 {
		t.Errorf("Moves = %d after shuffle, expected 0", snap.Moves)
	}
}

func TestRestartRepeatsDeal(t *testing.T) {
	g := newTestGame(t, 1)
	initial := g.Snapshot().Cells

	// Disturb the board, then restart.
	for i := 0; i < 5; i++ {
		g.Step(frame(core.ActionUp))
		g.Step(frame(core.ActionLeft))
	}
	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	if !equalCells(initial, snap.Cells) {
		t.Errorf("Restart should repeat the same deal:\n%v\n%v", initial, snap.Cells)
	}
	if snap.Moves != 0 {
		t.Errorf("Moves = %d after restart, expected 0", snap.Moves)
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, tc := range []struct {
		id   string
		rows int
		cols int
	}{
		{"eight", 3, 3},
		{"fifteen", 4, 4},
		{"twentyfour", 5, 5},
	} {
		g := New(tc.id, tc.id, tc.rows, tc.cols)
		g.Reset(testConfig(1))
		snap := g.Snapshot()
		if snap.Rows != tc.rows || snap.Cols != tc.cols {
			t.Errorf("%s: board %dx%d, expected %dx%d", tc.id, snap.Rows, snap.Cols, tc.rows, tc.cols)
		}
		if len(snap.Cells) != tc.rows*tc.cols {
			t.Errorf("%s: %d cells, expected %d", tc.id, len(snap.Cells), tc.rows*tc.cols)
		}
	}
}

func indexOf(cells []int, v int) int {
	for i, c := range cells {
		if c == v {
			return i
		}
	}
	return -1
}

func TestOverlayClampedToScreen(t *testing.T) {
	g := &Game{screenW: 40, screenH: 10}
	dst := core.NewScreen(40, 10)

	// A center at the origin would push half the box off screen; the box
	// must shift to stay fully visible instead.
	g.drawOverlay(dst, 0, 0, "PAUSED", "Press P to resume")

	if got := dst.Get(0, 0); got != '┌' {
		t.Errorf("top-left = %q, expected the box pinned to the origin", got)
	}
	out := dst.String()
	if !strings.Contains(out, "PAUSED") || !strings.Contains(out, "Press P to resume") {
		t.Errorf("overlay text clipped off screen:\n%s", out)
	}
}
