package tile

import "fmt"

// Pos is a grid coordinate. X grows toward East, Y toward South.
type Pos struct {
	X uint16
	Y uint16
}

// P is a convenience constructor for Pos.
func P(x, y uint16) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Span returns the inclusive range between a and b in ascending order.
func Span(a, b uint16) (lo, hi uint16) {
	if a < b {
		return a, b
	}
	return b, a
}

// Delta returns |a - b| without overflowing.
func Delta(a, b uint16) uint16 {
	if a > b {
		return a - b
	}
	return b - a
}
