package tile

import "fmt"

// Grid is a fixed-size rectangle of tiles.
// Cells are stored in row-major order: index = y*W + x.
// Coordinates passed to the accessors must be in bounds; the input layer
// clamps cursor positions with Clamp before they reach the grid, so an
// out-of-range index is a caller bug and panics.
type Grid struct {
	w, h  uint16
	cells []Tile
}

// NewGrid creates a grid where every tile is grass with no cover.
func NewGrid(w, h uint16) *Grid {
	if w == 0 || h == 0 {
		panic(fmt.Sprintf("tile: invalid grid size %dx%d", w, h))
	}
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]Tile, int(w)*int(h)),
	}
	for i := range g.cells {
		g.cells[i] = NewTile()
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() uint16 {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() uint16 {
	return g.h
}

// Len returns the number of tiles.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x, y) addresses a tile.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < int(g.w) && y >= 0 && y < int(g.h)
}

// Clamp restricts a signed coordinate pair into the grid.
func (g *Grid) Clamp(x, y int) Pos {
	return Pos{
		X: uint16(clamp(x, 0, int(g.w)-1)),
		Y: uint16(clamp(y, 0, int(g.h)-1)),
	}
}

func (g *Grid) index(p Pos) int {
	if p.X >= g.w || p.Y >= g.h {
		panic(fmt.Sprintf("tile: position %v outside %dx%d grid", p, g.w, g.h))
	}
	return int(p.Y)*int(g.w) + int(p.X)
}

// At returns a copy of the tile at p.
func (g *Grid) At(p Pos) Tile {
	return g.cells[g.index(p)]
}

// Tile returns a pointer to the tile at p for in-place mutation.
func (g *Grid) Tile(p Pos) *Tile {
	return &g.cells[g.index(p)]
}

// Set overwrites the tile at p.
func (g *Grid) Set(p Pos, t Tile) {
	g.cells[g.index(p)] = t
}

// Each calls fn for every tile in row-major order.
func (g *Grid) Each(fn func(p Pos, t Tile)) {
	for y := uint16(0); y < g.h; y++ {
		for x := uint16(0); x < g.w; x++ {
			fn(Pos{X: x, Y: y}, g.cells[int(y)*int(g.w)+int(x)])
		}
	}
}

// Count returns the number of tiles matching pred.
func (g *Grid) Count(pred func(Tile) bool) int {
	n := 0
	for _, t := range g.cells {
		if pred(t) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
