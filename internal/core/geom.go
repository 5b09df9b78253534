// Package core provides fundamental types and utilities for the screensaver.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Direction is one of the four cardinal headings a pipe can move in.
// The numeric order matters: perpendicular headings are one step away
// modulo 4 and the reverse heading is two steps away.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// Directions lists every valid heading in enum order.
var Directions = [...]Direction{DirUp, DirLeft, DirDown, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Perpendiculars returns the two headings at 90 degrees to d,
// counter-clockwise first.
func (d Direction) Perpendiculars() (Direction, Direction) {
	return (d + 1) % 4, (d + 3) % 4
}

// Position is a cell on an unbounded integer grid.
type Position struct {
	Row, Col int
}

// Step returns the neighbouring position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case DirUp:
		p.Row--
	case DirLeft:
		p.Col--
	case DirDown:
		p.Row++
	case DirRight:
		p.Col++
	}
	return p
}

// Segment is where a pipe currently is and which way it is heading.
type Segment struct {
	Pos Position
	Dir Direction
}

// Viewport is the drawable extent of the terminal in cells.
type Viewport struct {
	Rows, Cols int
}

// OutOfBounds reports whether p has left the viewport.
// The comparison against the extent is strict, so a pipe may sit one
// row or column past the last visible cell before it retires.
func (v Viewport) OutOfBounds(p Position) bool {
	return p.Col < 0 || p.Col > v.Cols || p.Row < 0 || p.Row > v.Rows
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
