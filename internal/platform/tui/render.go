package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkarpenko/tui-slide/internal/puzzle"
)

// tileRows is the height of a tile box in terminal cells. Terminal cells are
// roughly twice as tall as wide, so a fixed small height keeps tiles looking
// square next to the configured tile width.
const tileRows = 3

// colorStyles maps Color roles to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault: lipgloss.NewStyle(),
	ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorSliding: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// BoardSize returns the rendered board dimensions in terminal cells.
func BoardSize(m puzzle.Model) (int, int) {
	w := m.Width*(m.TileSize+m.TileSpacing) - m.TileSpacing
	h := m.Height*(tileRows+m.TileSpacing) - m.TileSpacing
	return w, h
}

// basePosition returns the top-left screen cell of a board cell, relative to
// the board origin.
func basePosition(m puzzle.Model, pos puzzle.Position) (int, int) {
	return pos.Col * (m.TileSize + m.TileSpacing), pos.Row * (tileRows + m.TileSpacing)
}

// DrawModel draws the board into the screen buffer with its top-left corner
// at (originX, originY). Static tiles sit at their base positions; the
// sliding tile, if any, is drawn last at its interpolated position so it
// overlaps cleanly while in flight.
func DrawModel(s *Screen, m puzzle.Model, originX, originY int) {
	slidingTile, slidingAt, sliding := m.SlidingTile()

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			pos := puzzle.Position{Row: row, Col: col}
			tile := m.Board.At(row, col)
			if tile.IsEmpty() {
				continue
			}
			if sliding && pos == slidingAt {
				continue
			}
			x, y := basePosition(m, pos)
			drawTile(s, originX+x, originY+y, m.TileSize, tile.Label, ColorBorder)
		}
	}

	if sliding {
		// The tile slides from its origin cell, which is the current empty
		// cell, toward the cell it already occupies logically.
		fromX, fromY := basePosition(m, m.Empty)
		toX, toY := basePosition(m, slidingAt)
		t := m.Anim.Progress
		x := fromX + roundOffset(float64(toX-fromX)*t)
		y := fromY + roundOffset(float64(toY-fromY)*t)
		drawTile(s, originX+x, originY+y, m.TileSize, slidingTile.Label, ColorSliding)
	}
}

// drawTile draws one bordered tile box with its label centered.
func drawTile(s *Screen, x, y, width int, label string, border Color) {
	s.Set(x, y, '┌', border)
	s.Set(x+width-1, y, '┐', border)
	s.Set(x, y+tileRows-1, '└', border)
	s.Set(x+width-1, y+tileRows-1, '┘', border)
	for i := 1; i < width-1; i++ {
		s.Set(x+i, y, '─', border)
		s.Set(x+i, y+tileRows-1, '─', border)
	}
	for j := 1; j < tileRows-1; j++ {
		s.Set(x, y+j, '│', border)
		s.Set(x+width-1, y+j, '│', border)
		for i := 1; i < width-1; i++ {
			s.Set(x+i, y+j, ' ', ColorDefault)
		}
	}

	labelX := x + (width-len(label))/2
	s.SetString(labelX, y+tileRows/2, label, ColorLabel)
}

func roundOffset(v float64) int {
	return int(math.Round(v))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
