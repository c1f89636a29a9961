package puzzle

import "fmt"

// Action is one event consumed by Reduce: a directional move request from
// the player, or a periodic animation tick from the platform timer.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionTick
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionTick:
		return "Tick"
	default:
		return "Unknown"
	}
}

// direction maps a directional action to its move direction.
// Non-directional actions map to DirNone.
func (a Action) direction() Direction {
	switch a {
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	default:
		return DirNone
	}
}

// Model is the complete observable game state. It is a plain value: Reduce
// returns a new Model and never mutates its input, so the renderer only ever
// reads a fully formed snapshot.
type Model struct {
	Width       int
	Height      int
	TileSize    int
	TileSpacing int
	Board       Board
	Empty       Position
	Anim        Animation
	Moves       int
}

// New creates a Model in the solved configuration, with the empty cell at
// the bottom-right corner and no animation in flight. TileSize and
// TileSpacing are opaque to the core; only the renderer interprets them.
func New(width, height, tileSize, tileSpacing int) (Model, error) {
	if width < 1 || height < 1 || width*height < 2 {
		return Model{}, fmt.Errorf("puzzle: invalid board size %dx%d", width, height)
	}
	return Model{
		Width:       width,
		Height:      height,
		TileSize:    tileSize,
		TileSpacing: tileSpacing,
		Board:       NewBoard(width, height),
		Empty:       Position{Row: height - 1, Col: width - 1},
	}, nil
}

// CanMove reports whether the direction identifies a neighbor tile that can
// slide into the empty cell. It only checks board geometry; the animation
// lock is enforced by Reduce.
func (m Model) CanMove(d Direction) bool {
	_, ok := moveSource(m.Empty, m.Width, m.Height, d)
	return ok
}

// Reduce folds one action into the model. It is total over its input
// domain: illegal moves, moves requested mid-slide, and unrecognized
// actions all return the model unchanged rather than failing.
func Reduce(m Model, a Action) Model {
	switch a {
	case ActionTick:
		m.Anim = m.Anim.advance()
		return m
	case ActionLeft, ActionRight, ActionUp, ActionDown:
		return m.applyMove(a.direction())
	default:
		return m
	}
}

// applyMove commits a legal move instantly: the neighbor tile and the empty
// cell swap, the empty position moves to the neighbor's old cell, and a
// slide animation is armed so the tile is shown traveling into its new cell
// over the following ticks.
func (m Model) applyMove(d Direction) Model {
	if m.Anim.Active() {
		return m
	}
	src, ok := moveSource(m.Empty, m.Width, m.Height, d)
	if !ok {
		return m
	}

	board := m.Board.clone()
	board.swap(board.index(src.Row, src.Col), board.index(m.Empty.Row, m.Empty.Col))

	m.Board = board
	m.Empty = src
	m.Anim = Animation{Direction: d}
	m.Moves++
	return m
}

// SlidingTile returns the tile currently shown mid-slide and the cell it now
// logically occupies. While a slide is active that cell is always adjacent
// to the empty cell, on the side opposite the slide direction; the tile's
// visual origin is the current empty cell. ok is false when idle.
func (m Model) SlidingTile() (tile Tile, at Position, ok bool) {
	if !m.Anim.Active() {
		return Tile{}, Position{}, false
	}
	at = m.Empty
	switch m.Anim.Direction {
	case DirLeft:
		at.Col--
	case DirRight:
		at.Col++
	case DirUp:
		at.Row--
	case DirDown:
		at.Row++
	}
	return m.Board.At(at.Row, at.Col), at, true
}
