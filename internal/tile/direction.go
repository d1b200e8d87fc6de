package tile

import "fmt"

// Direction4 is a compass direction. The numeric value doubles as the index
// into a road's quarter array.
type Direction4 uint8

const (
	North Direction4 = iota
	East
	South
	West
)

// Directions lists the four compass directions in quarter-index order.
var Directions = [4]Direction4{North, East, South, West}

// Dir4 converts a quarter index into a direction.
// Panics for values outside 0..3: only fixed quarter iteration calls this.
func Dir4(i int) Direction4 {
	if i < 0 || i > 3 {
		panic(fmt.Sprintf("tile: invalid direction index %d", i))
	}
	return Direction4(i)
}

// Index returns the quarter-array index for the direction.
func (d Direction4) Index() int {
	return int(d)
}

// String returns the string representation of a direction.
func (d Direction4) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction4) Opposite() Direction4 {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Direction2 is a straight-line axis.
type Direction2 uint8

const (
	NorthSouth Direction2 = iota
	EastWest
)

// String returns the string representation of an axis.
func (d Direction2) String() string {
	switch d {
	case NorthSouth:
		return "NorthSouth"
	case EastWest:
		return "EastWest"
	default:
		return "Unknown"
	}
}

// Ends returns the directions facing the previous and next neighbor along
// the axis. Coordinates grow toward South and East.
func (d Direction2) Ends() (prev, next Direction4) {
	if d == EastWest {
		return West, East
	}
	return North, South
}
