package puzzle

import (
	"errors"
	"testing"
)

func mustBoard(t *testing.T, rows, cols int, cells []int) *Board {
	t.Helper()
	b, err := FromCells(rows, cols, cells)
	if err != nil {
		t.Fatalf("FromCells(%d, %d, %v): %v", rows, cols, cells, err)
	}
	return b
}

func TestNewSolved(t *testing.T) {
	b := New(3, 4)
	if !b.Solved() {
		t.Fatal("New board should be solved")
	}
	if b.Rows() != 3 || b.Cols() != 4 || b.Len() != 12 {
		t.Errorf("dimensions: got %dx%d len %d", b.Rows(), b.Cols(), b.Len())
	}
	if b.At(0, 0) != 1 {
		t.Errorf("At(0,0) = %d, want 1", b.At(0, 0))
	}
	if b.At(2, 3) != Blank {
		t.Errorf("At(2,3) = %d, want blank", b.At(2, 3))
	}
	if b.BlankIndex() != 11 {
		t.Errorf("BlankIndex = %d, want 11", b.BlankIndex())
	}
	if got := b.GoalValue(1, 2); got != 7 {
		t.Errorf("GoalValue(1,2) = %d, want 7", got)
	}
	if got := b.GoalValue(2, 3); got != Blank {
		t.Errorf("GoalValue(2,3) = %d, want blank", got)
	}
}

func TestNewPanicsOnSmallBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(1, 5) should panic")
		}
	}()
	New(1, 5)
}

func TestFromCellsValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		cells   []int
		wantErr bool
	}{
		{"valid", 2, 2, []int{1, 2, 3, 0}, false},
		{"valid scrambled", 2, 3, []int{5, 0, 2, 1, 4, 3}, false},
		{"too small", 1, 4, []int{1, 2, 3, 0}, true},
		{"wrong length", 2, 2, []int{1, 2, 0}, true},
		{"duplicate value", 2, 2, []int{1, 1, 3, 0}, true},
		{"duplicate blank", 2, 2, []int{1, 0, 3, 0}, true},
		{"no blank", 2, 2, []int{1, 2, 3, 4}, true},
		{"value out of range", 2, 2, []int{1, 2, 5, 0}, true},
		{"negative value", 2, 2, []int{1, 2, -3, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromCells(tt.rows, tt.cols, tt.cells)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	b := mustBoard(t, 2, 3, []int{5, 0, 2, 1, 4, 3})
	if pos, err := b.Locate(4); err != nil || pos != 4 {
		t.Errorf("Locate(4) = %d, %v, want 4, nil", pos, err)
	}
	if pos, err := b.Locate(Blank); err != nil || pos != 1 {
		t.Errorf("Locate(blank) = %d, %v, want 1, nil", pos, err)
	}
	if _, err := b.Locate(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate(99) err = %v, want ErrNotFound", err)
	}
}

func TestMoverStepAndLog(t *testing.T) {
	b := New(2, 2)
	mv := NewMover(b)

	// The blank starts at the bottom-right corner; down and right are walls.
	if err := mv.Step(MoveDown); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Step(down) err = %v, want ErrOutOfBounds", err)
	}
	if mv.Steps() != 0 {
		t.Errorf("failed move was logged: %d steps", mv.Steps())
	}

	if err := mv.Step(MoveUp); err != nil {
		t.Fatalf("Step(up): %v", err)
	}
	want := []int{1, 0, 3, 2}
	for i, v := range mv.Board().Cells() {
		if v != want[i] {
			t.Errorf("cell %d = %d, want %d", i, v, want[i])
		}
	}
	if mv.Board().BlankIndex() != 1 {
		t.Errorf("BlankIndex = %d, want 1", mv.Board().BlankIndex())
	}
	if got := FormatMoves(mv.Log()); got != "U" {
		t.Errorf("log = %q, want %q", got, "U")
	}
}

func TestObserverSeesEveryMove(t *testing.T) {
	b := New(3, 3)
	mv := NewMover(b)
	var seen []Move
	mv.SetObserver(func(_ *Board, m Move) { seen = append(seen, m) })

	seq := []Move{MoveUp, MoveLeft, MoveDown, MoveRight}
	if err := mv.Macro(seq); err != nil {
		t.Fatalf("Macro: %v", err)
	}
	if FormatMoves(seen) != FormatMoves(seq) {
		t.Errorf("observer saw %q, want %q", FormatMoves(seen), FormatMoves(seq))
	}
	if mv.Steps() != len(seq) {
		t.Errorf("Steps = %d, want %d", mv.Steps(), len(seq))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(2, 2)
	c := b.Clone()
	if err := NewMover(c).Step(MoveUp); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !b.Solved() {
		t.Error("mutating the clone changed the original")
	}
	if c.Solved() {
		t.Error("clone did not change")
	}
}

func TestString(t *testing.T) {
	if got, want := New(2, 2).String(), "1 2\n3 *"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	b := mustBoard(t, 2, 3, []int{5, 0, 2, 1, 4, 3})
	if got, want := b.String(), "5 * 2\n1 4 3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
