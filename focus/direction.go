package focus

// Direction is one of the four cardinal navigation directions. There are no
// diagonals; translators resolve a dominant axis before emitting.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	}
	return DirLeft
}

// Horizontal reports whether d moves along the X axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}
