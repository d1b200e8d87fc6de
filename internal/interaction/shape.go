package interaction

import (
	"fmt"

	"github.com/vovakirdan/gridsim/internal/tile"
)

// ShapeKind tags the variant held by an InteractionShape.
type ShapeKind uint8

const (
	ShapeDot ShapeKind = iota
	ShapeRectangle
	ShapeRoadLine
)

// String returns the string representation of a shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeDot:
		return "Dot"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeRoadLine:
		return "RoadLine"
	default:
		return "Unknown"
	}
}

// InteractionShape decides which tiles a drag gesture edits.
// Dot and Rectangle wrap a TileInteraction; RoadLine wraps a road material
// and builds its own per-tile BuildRoad edits. Shapes are immutable values:
// switching tools replaces the shape wholesale.
type InteractionShape struct {
	Kind        ShapeKind
	Interaction TileInteraction   // ShapeDot, ShapeRectangle
	Material    tile.RoadMaterial // ShapeRoadLine
}

// Dot applies ti to the tile under the cursor.
func Dot(ti TileInteraction) InteractionShape {
	return InteractionShape{Kind: ShapeDot, Interaction: ti}
}

// Rectangle applies ti to every tile between the drag start and the cursor.
func Rectangle(ti TileInteraction) InteractionShape {
	return InteractionShape{Kind: ShapeRectangle, Interaction: ti}
}

// RoadLine builds a straight road of material m along the drag.
func RoadLine(m tile.RoadMaterial) InteractionShape {
	return InteractionShape{Kind: ShapeRoadLine, Material: m}
}

// String returns a string representation of the shape.
func (s InteractionShape) String() string {
	if s.Kind == ShapeRoadLine {
		return fmt.Sprintf("RoadLine(%s)", s.Material)
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Interaction)
}

// EditResult summarizes one applied gesture.
type EditResult struct {
	Touched int // tiles the edit was offered to
	Changed int // tiles that actually changed
}

// Apply performs the gesture described by d on g.
func (s InteractionShape) Apply(g *tile.Grid, d DragState) EditResult {
	var res EditResult
	apply := func(p tile.Pos, ti TileInteraction) {
		res.Touched++
		if ti.Apply(g.Tile(p)) {
			res.Changed++
		}
	}

	switch s.Kind {
	case ShapeDot:
		apply(d.Pos, s.Interaction)
	case ShapeRectangle:
		eachInRect(d, func(p tile.Pos) {
			apply(p, s.Interaction)
		})
	case ShapeRoadLine:
		for _, seg := range roadSegments(d, s.Material) {
			apply(seg.pos, BuildRoad(seg.quarters))
		}
	}
	return res
}

// Footprint returns the tiles an edit or overlay for d would cover.
// For a road line this includes the single tile of a zero-length drag even
// though Apply does nothing there.
func (s InteractionShape) Footprint(d DragState) []tile.Pos {
	switch s.Kind {
	case ShapeRectangle:
		minX, minY, maxX, maxY := d.Rect()
		out := make([]tile.Pos, 0, (int(maxX)-int(minX)+1)*(int(maxY)-int(minY)+1))
		eachInRect(d, func(p tile.Pos) {
			out = append(out, p)
		})
		return out
	case ShapeRoadLine:
		return linePositions(d)
	default:
		return []tile.Pos{d.Pos}
	}
}

// Overlay classifies the tiles under the active gesture without touching
// the grid. While the left button is held it spans the edit footprint;
// otherwise it marks the single tile under the cursor.
func (s InteractionShape) Overlay(g *tile.Grid, d DragState) []OverlayCell {
	classify := func(p tile.Pos, ti TileInteraction) OverlayCell {
		return OverlayCell{Pos: p, Selection: ti.Classify(g.At(p))}
	}

	switch {
	case s.Kind == ShapeRectangle && d.Left:
		cells := make([]OverlayCell, 0)
		eachInRect(d, func(p tile.Pos) {
			cells = append(cells, classify(p, s.Interaction))
		})
		return cells
	case s.Kind == ShapeRoadLine && d.Left:
		positions := linePositions(d)
		cells := make([]OverlayCell, 0, len(positions))
		for _, p := range positions {
			cells = append(cells, classify(p, BuildRoad(tile.Quarters{})))
		}
		return cells
	case s.Kind == ShapeDot || s.Kind == ShapeRectangle:
		return []OverlayCell{classify(d.Pos, s.Interaction)}
	default:
		return []OverlayCell{{Pos: d.Pos, Selection: SelectPlain}}
	}
}

// eachInRect visits every tile of the inclusive drag rectangle once.
func eachInRect(d DragState, fn func(tile.Pos)) {
	minX, minY, maxX, maxY := d.Rect()
	for y := int(minY); y <= int(maxY); y++ {
		for x := int(minX); x <= int(maxX); x++ {
			fn(tile.P(uint16(x), uint16(y)))
		}
	}
}

type roadSegment struct {
	pos      tile.Pos
	quarters tile.Quarters
}

// lineAt places coordinate p of the dominant axis on the cross-axis line
// fixed by the drag start.
func lineAt(d DragState, axis tile.Direction2, p uint16) tile.Pos {
	if axis == tile.EastWest {
		return tile.P(p, d.ClickStart.Y)
	}
	return tile.P(d.ClickStart.X, p)
}

// lineRange returns the dominant-axis range of the drag.
func lineRange(d DragState, axis tile.Direction2) (lo, hi uint16) {
	if axis == tile.EastWest {
		return tile.Span(d.ClickStart.X, d.Pos.X)
	}
	return tile.Span(d.ClickStart.Y, d.Pos.Y)
}

// linePositions returns the tiles of the drag line from low to high.
func linePositions(d DragState) []tile.Pos {
	axis := d.LineDirection()
	lo, hi := lineRange(d, axis)
	out := make([]tile.Pos, 0, int(hi)-int(lo)+1)
	for p := int(lo); p <= int(hi); p++ {
		out = append(out, lineAt(d, axis, uint16(p)))
	}
	return out
}

// roadSegments computes the quarters for each tile of a road drag. Every
// tile connects to both neighbors except the two ends, which stay open
// toward the outside. A zero-length drag yields nothing.
func roadSegments(d DragState, m tile.RoadMaterial) []roadSegment {
	axis := d.LineDirection()
	lo, hi := lineRange(d, axis)
	if lo == hi {
		return nil
	}

	prev, next := axis.Ends()
	out := make([]roadSegment, 0, int(hi)-int(lo)+1)
	for p := int(lo); p <= int(hi); p++ {
		var q tile.Quarters
		if p != int(lo) {
			q = q.With(prev, m)
		}
		if p != int(hi) {
			q = q.With(next, m)
		}
		out = append(out, roadSegment{pos: lineAt(d, axis, uint16(p)), quarters: q})
	}
	return out
}
