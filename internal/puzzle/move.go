package puzzle

// Direction names a move request by which neighbor tile it pulls into the
// empty cell: DirLeft slides the tile to the right of the empty cell one
// step leftwards, and so on. This matches the on-screen travel of the tile,
// not of the empty slot.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// moveSource returns the cell holding the tile that would slide for the
// given direction. ok is false when no such neighbor exists, i.e. the move
// is illegal from this empty-cell position.
func moveSource(empty Position, width, height int, d Direction) (Position, bool) {
	switch d {
	case DirLeft:
		if empty.Col < width-1 {
			return Position{Row: empty.Row, Col: empty.Col + 1}, true
		}
	case DirRight:
		if empty.Col > 0 {
			return Position{Row: empty.Row, Col: empty.Col - 1}, true
		}
	case DirUp:
		if empty.Row < height-1 {
			return Position{Row: empty.Row + 1, Col: empty.Col}, true
		}
	case DirDown:
		if empty.Row > 0 {
			return Position{Row: empty.Row - 1, Col: empty.Col}, true
		}
	}
	return Position{}, false
}
