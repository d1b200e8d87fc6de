package interaction

import "github.com/vovakirdan/gridsim/internal/tile"

// DragState is the pointer state in grid coordinates.
// Pos is always inside the grid; the input layer clamps it.
type DragState struct {
	ClickStart tile.Pos
	Pos        tile.Pos

	Left   bool
	Middle bool
	Right  bool
}

// Press starts a drag at the current position.
func (d *DragState) Press() {
	d.ClickStart = d.Pos
	d.Left = true
}

// Release ends the drag. ClickStart stays frozen until the next press.
func (d *DragState) Release() {
	d.Left = false
}

// Move updates the live cursor position.
func (d *DragState) Move(p tile.Pos) {
	d.Pos = p
}

// Rect returns the inclusive bounds spanned by ClickStart and Pos.
func (d DragState) Rect() (minX, minY, maxX, maxY uint16) {
	minX, maxX = tile.Span(d.ClickStart.X, d.Pos.X)
	minY, maxY = tile.Span(d.ClickStart.Y, d.Pos.Y)
	return minX, minY, maxX, maxY
}

// LineDirection classifies the drag axis: East–West only when the
// horizontal delta strictly exceeds the vertical one. A tie, including a
// zero-length drag, is North–South.
func (d DragState) LineDirection() tile.Direction2 {
	dx := tile.Delta(d.Pos.X, d.ClickStart.X)
	dy := tile.Delta(d.Pos.Y, d.ClickStart.Y)
	if dx > dy {
		return tile.EastWest
	}
	return tile.NorthSouth
}
