package tui

import (
	"strings"
	"testing"
)

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'x', ColorLabel)

	cell := s.GetCell(3, 2)
	if cell.Rune != 'x' || cell.Color != ColorLabel {
		t.Errorf("GetCell(3,2) = %+v, want {x, ColorLabel}", cell)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(4, 4)

	s.Set(-1, 0, 'x', ColorDefault)
	s.Set(0, -1, 'x', ColorDefault)
	s.Set(4, 0, 'x', ColorDefault)
	s.Set(0, 4, 'x', ColorDefault)

	if strings.ContainsRune(s.String(), 'x') {
		t.Error("Out-of-bounds Set modified the screen")
	}

	if got := s.GetCell(99, 99); got.Rune != ' ' {
		t.Errorf("Out-of-bounds GetCell = %+v, want blank", got)
	}
}

func TestScreenSetStringClips(t *testing.T) {
	s := NewScreen(5, 1)

	s.SetString(3, 0, "hello", ColorHUD)

	if got := s.String(); got != "   he" {
		t.Errorf("String() = %q, want %q", got, "   he")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(0, 0, 'x', ColorDefault)

	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("Size after resize = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("Resize should clear previous content")
	}
}

func TestScreenStringShape(t *testing.T) {
	s := NewScreen(3, 2)

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("Line %d has %d runes, want 3", i, len([]rune(line)))
		}
	}
}
