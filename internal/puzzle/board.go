// Package puzzle implements the sliding-tile game core: board state, move
// validation, and the tick-driven slide animation. It contains no external
// dependencies (especially no Bubble Tea) to keep the logic pure and testable;
// the platform layer reads Model snapshots and renders them.
package puzzle

import "strconv"

// Tile is a labeled, movable unit occupying one board cell.
// The zero Tile marks the empty cell.
type Tile struct {
	Label string
}

// IsEmpty reports whether this tile is the empty marker.
func (t Tile) IsEmpty() bool {
	return t.Label == ""
}

// Position identifies a board cell by zero-indexed row and column.
type Position struct {
	Row int
	Col int
}

// Board is a rectangular grid of tiles stored in a single contiguous
// row-major buffer, so moving a tile is a constant-size index swap.
// Exactly one cell is empty at all times.
type Board struct {
	width  int
	height int
	cells  []Tile
}

// NewBoard creates a solved board: labels "1" through "width*height-1" in
// row-major order, with the empty cell at the bottom-right corner.
// Dimensions are validated by the Model constructor.
func NewBoard(width, height int) Board {
	cells := make([]Tile, width*height)
	for i := 0; i < len(cells)-1; i++ {
		cells[i] = Tile{Label: strconv.Itoa(i + 1)}
	}
	return Board{width: width, height: height, cells: cells}
}

// Width returns the board width in cells.
func (b Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b Board) Height() int {
	return b.height
}

// At returns the tile at the given cell.
func (b Board) At(row, col int) Tile {
	return b.cells[b.index(row, col)]
}

func (b Board) index(row, col int) int {
	return row*b.width + col
}

// clone returns a board with its own copy of the cell buffer, so a move can
// produce a fresh value without touching the original.
func (b Board) clone() Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return Board{width: b.width, height: b.height, cells: cells}
}

func (b Board) swap(i, j int) {
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}
