package puzzle

import "testing"

func TestMoveLegality(t *testing.T) {
	tests := []struct {
		name  string
		empty Position
		dir   Direction
		legal bool
	}{
		{"left legal when empty not in last column", Position{1, 1}, DirLeft, true},
		{"left illegal when empty in last column", Position{1, 3}, DirLeft, false},
		{"right legal when empty not in first column", Position{1, 1}, DirRight, true},
		{"right illegal when empty in first column", Position{1, 0}, DirRight, false},
		{"up legal when empty not in last row", Position{1, 1}, DirUp, true},
		{"up illegal when empty in last row", Position{2, 1}, DirUp, false},
		{"down legal when empty not in first row", Position{1, 1}, DirDown, true},
		{"down illegal when empty in first row", Position{0, 1}, DirDown, false},
		{"none never legal", Position{1, 1}, DirNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := moveSource(tt.empty, 4, 3, tt.dir)
			if ok != tt.legal {
				t.Errorf("moveSource(%v, %v) legal = %v, want %v", tt.empty, tt.dir, ok, tt.legal)
			}
		})
	}
}

func TestMoveSourceCells(t *testing.T) {
	empty := Position{Row: 1, Col: 1}

	tests := []struct {
		dir  Direction
		want Position
	}{
		{DirLeft, Position{1, 2}},  // tile right of the empty slides left
		{DirRight, Position{1, 0}}, // tile left of the empty slides right
		{DirUp, Position{2, 1}},    // tile below the empty slides up
		{DirDown, Position{0, 1}},  // tile above the empty slides down
	}

	for _, tt := range tests {
		src, ok := moveSource(empty, 4, 3, tt.dir)
		if !ok {
			t.Errorf("%v: expected legal move", tt.dir)
			continue
		}
		if src != tt.want {
			t.Errorf("%v: source = %v, want %v", tt.dir, src, tt.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	dirs := map[Direction]string{
		DirNone:  "None",
		DirLeft:  "Left",
		DirRight: "Right",
		DirUp:    "Up",
		DirDown:  "Down",
	}
	for d, want := range dirs {
		if d.String() != want {
			t.Errorf("Direction(%d).String() = %q, want %q", d, d.String(), want)
		}
	}
}
