package core

// Direction is one of the four directional steering intents.
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

// Valid reports whether d is one of the four steering directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// Directions lists the steering directions in a stable order.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// Intent records which directions are currently held.
// Input handlers mutate it between ticks; the next tick reads it.
type Intent struct {
	Left, Right, Up, Down bool
}

// Set marks a direction as held or released.
// Invalid directions are ignored.
func (in *Intent) Set(d Direction, active bool) {
	switch d {
	case DirLeft:
		in.Left = active
	case DirRight:
		in.Right = active
	case DirUp:
		in.Up = active
	case DirDown:
		in.Down = active
	}
}

// Has returns true if the given direction is held.
func (in Intent) Has(d Direction) bool {
	switch d {
	case DirLeft:
		return in.Left
	case DirRight:
		return in.Right
	case DirUp:
		return in.Up
	case DirDown:
		return in.Down
	default:
		return false
	}
}

// Clear releases every direction.
func (in *Intent) Clear() {
	*in = Intent{}
}
