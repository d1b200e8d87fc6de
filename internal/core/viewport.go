package core

// Viewport is the window of grid cells visible on screen. Each grid cell
// takes CellW screen columns so tiles look roughly square in a terminal.
type Viewport struct {
	OffX, OffY int // top-left grid cell
	Cols, Rows int // visible grid cells
	GridW      int
	GridH      int
}

// CellW is the number of screen columns per grid cell.
const CellW = 2

// NewViewport creates a viewport for a gridW x gridH grid shown in a
// screenW x screenH character area.
func NewViewport(gridW, gridH, screenW, screenH int) Viewport {
	v := Viewport{GridW: gridW, GridH: gridH}
	v.Resize(screenW, screenH)
	return v
}

// Resize adapts the visible area to a new screen size.
func (v *Viewport) Resize(screenW, screenH int) {
	v.Cols = Max(Min(screenW/CellW, v.GridW), 1)
	v.Rows = Max(Min(screenH, v.GridH), 1)
	v.Pan(0, 0)
}

// Pan scrolls by (dx, dy) grid cells, stopping at the grid edges.
func (v *Viewport) Pan(dx, dy int) {
	v.OffX = Clamp(v.OffX+dx, 0, Max(v.GridW-v.Cols, 0))
	v.OffY = Clamp(v.OffY+dy, 0, Max(v.GridH-v.Rows, 0))
}

// Follow scrolls the minimum amount needed to show grid cell (x, y).
func (v *Viewport) Follow(x, y int) {
	dx, dy := 0, 0
	if x < v.OffX {
		dx = x - v.OffX
	} else if x >= v.OffX+v.Cols {
		dx = x - (v.OffX + v.Cols - 1)
	}
	if y < v.OffY {
		dy = y - v.OffY
	} else if y >= v.OffY+v.Rows {
		dy = y - (v.OffY + v.Rows - 1)
	}
	v.Pan(dx, dy)
}

// Visible returns the visible area in grid cells.
func (v Viewport) Visible() Rect {
	return NewRect(v.OffX, v.OffY, v.Cols, v.Rows)
}

// ScreenToGrid maps a screen cell to the grid cell under it. The result is
// not clamped; callers clamp against the grid.
func (v Viewport) ScreenToGrid(sx, sy int) (int, int) {
	return v.OffX + sx/CellW, v.OffY + sy
}

// GridToScreen maps a grid cell to the screen column and row of its left
// half. ok is false when the cell is outside the viewport.
func (v Viewport) GridToScreen(gx, gy int) (sx, sy int, ok bool) {
	if !v.Visible().Contains(gx, gy) {
		return 0, 0, false
	}
	return (gx - v.OffX) * CellW, gy - v.OffY, true
}
