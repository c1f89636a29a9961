package puzzle

import (
	"reflect"
	"testing"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := New(4, 3, 7, 1)
	if err != nil {
		t.Fatalf("New(4, 3) failed: %v", err)
	}
	return m
}

func TestNewModelInitialInvariant(t *testing.T) {
	m := newTestModel(t)

	if m.Empty != (Position{Row: 2, Col: 3}) {
		t.Errorf("Empty cell at %v, want (2,3)", m.Empty)
	}
	if m.Anim.Active() {
		t.Errorf("Fresh model has animation in flight: %+v", m.Anim)
	}
	if m.Moves != 0 {
		t.Errorf("Fresh model has move count %d", m.Moves)
	}
	if !m.Board.At(2, 3).IsEmpty() {
		t.Error("Board cell at empty position is not empty")
	}
}

func TestNewModelRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{0, 3},
		{4, 0},
		{-1, 3},
		{1, 1}, // no room for both a tile and the empty cell
	}

	for _, tt := range tests {
		if _, err := New(tt.width, tt.height, 7, 1); err == nil {
			t.Errorf("New(%d, %d) succeeded, want error", tt.width, tt.height)
		}
	}
}

func TestReduceAppliesLegalMove(t *testing.T) {
	m := newTestModel(t)

	// Empty at (2,3): the tile at (2,2), label "11", slides right.
	next := Reduce(m, ActionRight)

	if next.Empty != (Position{Row: 2, Col: 2}) {
		t.Errorf("Empty moved to %v, want (2,2)", next.Empty)
	}
	if got := next.Board.At(2, 3).Label; got != "11" {
		t.Errorf("Tile at (2,3) = %q, want \"11\"", got)
	}
	if !next.Board.At(2, 2).IsEmpty() {
		t.Error("Cell (2,2) should now be empty")
	}
	if next.Anim.Direction != DirRight || next.Anim.Progress != 0 {
		t.Errorf("Animation = %+v, want {Right, 0}", next.Anim)
	}
	if next.Moves != 1 {
		t.Errorf("Move count = %d, want 1", next.Moves)
	}
}

func TestReduceIgnoresIllegalMove(t *testing.T) {
	m := newTestModel(t)

	// Empty at (2,3): no tile to the right of the empty, so Left is illegal.
	next := Reduce(m, ActionLeft)

	if !reflect.DeepEqual(m, next) {
		t.Errorf("Illegal move changed the model:\n got %+v\nwant %+v", next, m)
	}
}

func TestReduceRejectsMoveDuringAnimation(t *testing.T) {
	m := newTestModel(t)

	first := Reduce(m, ActionRight)
	second := Reduce(first, ActionUp) // legal geometry, but a slide is in flight

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Move accepted while animating:\n got %+v\nwant %+v", second, first)
	}
}

func TestReduceIgnoresUnknownAction(t *testing.T) {
	m := newTestModel(t)

	next := Reduce(m, ActionNone)
	if !reflect.DeepEqual(m, next) {
		t.Error("ActionNone changed the model")
	}

	next = Reduce(m, Action(99))
	if !reflect.DeepEqual(m, next) {
		t.Error("Unrecognized action changed the model")
	}
}

func TestLeftRightRoundTrip(t *testing.T) {
	m := newTestModel(t)

	// Put the empty somewhere Left is legal first.
	m = Reduce(m, ActionRight)
	m = drainAnimation(t, m)
	before := m

	m = Reduce(m, ActionLeft)
	m = drainAnimation(t, m)
	m = Reduce(m, ActionRight)
	m = drainAnimation(t, m)

	if m.Empty != before.Empty {
		t.Errorf("Round trip left empty at %v, want %v", m.Empty, before.Empty)
	}
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if m.Board.At(row, col) != before.Board.At(row, col) {
				t.Errorf("Cell (%d,%d) differs after round trip: %q vs %q",
					row, col, m.Board.At(row, col).Label, before.Board.At(row, col).Label)
			}
		}
	}
}

func TestReduceScenario4x3(t *testing.T) {
	// Fresh 4x3 board, empty at (2,3). Left is illegal, Right moves tile
	// "11" into the corner, and 100 ticks later the slide is done with the
	// board unchanged further.
	m := newTestModel(t)

	afterLeft := Reduce(m, ActionLeft)
	if !reflect.DeepEqual(m, afterLeft) {
		t.Fatal("Left should be a no-op with the empty in the last column")
	}

	m = Reduce(m, ActionRight)
	if m.Anim.Direction != DirRight {
		t.Fatalf("Animation direction = %v, want Right", m.Anim.Direction)
	}

	boardAfterMove := m.Board
	ticks := 0
	for m.Anim.Active() {
		m = Reduce(m, ActionTick)
		ticks++
		if ticks > 200 {
			t.Fatal("Animation did not converge")
		}
	}

	if ticks != 100 {
		t.Errorf("Animation took %d ticks, want exactly 100", ticks)
	}
	if m.Anim != (Animation{}) {
		t.Errorf("Animation = %+v, want zero value", m.Anim)
	}
	if !reflect.DeepEqual(boardAfterMove, m.Board) {
		t.Error("Board changed during animation ticks")
	}
}

func TestSlidingTile(t *testing.T) {
	m := newTestModel(t)

	if _, _, ok := m.SlidingTile(); ok {
		t.Error("Idle model reports a sliding tile")
	}

	m = Reduce(m, ActionRight)
	tile, at, ok := m.SlidingTile()
	if !ok {
		t.Fatal("No sliding tile after a move")
	}
	if tile.Label != "11" {
		t.Errorf("Sliding tile = %q, want \"11\"", tile.Label)
	}
	if at != (Position{Row: 2, Col: 3}) {
		t.Errorf("Sliding tile at %v, want (2,3)", at)
	}
}

func drainAnimation(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; m.Anim.Active(); i++ {
		if i > 200 {
			t.Fatal("Animation did not converge")
		}
		m = Reduce(m, ActionTick)
	}
	return m
}
