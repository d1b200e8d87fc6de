package interaction_test

import (
	"testing"

	"github.com/vovakirdan/gridsim/internal/interaction"
	"github.com/vovakirdan/gridsim/internal/tile"
)

func drag(x0, y0, x1, y1 uint16, held bool) interaction.DragState {
	return interaction.DragState{
		ClickStart: tile.P(x0, y0),
		Pos:        tile.P(x1, y1),
		Left:       held,
	}
}

func gravel(dirs ...tile.Direction4) tile.Cover {
	var q tile.Quarters
	for _, d := range dirs {
		q = q.With(d, tile.RoadGravel)
	}
	return tile.Road(q)
}

func TestDragLifecycle(t *testing.T) {
	var d interaction.DragState
	d.Move(tile.P(3, 4))
	d.Press()
	d.Move(tile.P(7, 1))

	if d.ClickStart != tile.P(3, 4) || d.Pos != tile.P(7, 1) || !d.Left {
		t.Errorf("unexpected drag state %+v", d)
	}

	d.Release()
	if d.Left {
		t.Error("Release should clear the held flag")
	}
	if d.ClickStart != tile.P(3, 4) {
		t.Error("ClickStart must stay frozen until the next press")
	}
}

func TestLineDirection(t *testing.T) {
	testCases := []struct {
		name     string
		d        interaction.DragState
		expected tile.Direction2
	}{
		{"vertical", drag(2, 2, 2, 5, true), tile.NorthSouth},
		{"horizontal", drag(2, 2, 6, 3, true), tile.EastWest},
		{"tie resolves north-south", drag(2, 2, 5, 5, true), tile.NorthSouth},
		{"negative tie", drag(5, 5, 2, 8, true), tile.NorthSouth},
		{"zero length", drag(4, 4, 4, 4, true), tile.NorthSouth},
		{"leftward", drag(9, 3, 1, 4, true), tile.EastWest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.LineDirection(); got != tc.expected {
				t.Errorf("LineDirection() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDotTouchesCursorOnly(t *testing.T) {
	g := tile.NewGrid(5, 5)
	shape := interaction.Dot(interaction.BuildCover(tile.TestBuilding))

	res := shape.Apply(g, drag(0, 0, 3, 2, true))

	if res.Touched != 1 || res.Changed != 1 {
		t.Errorf("EditResult = %+v, expected 1/1", res)
	}
	if g.At(tile.P(3, 2)).Cover != tile.TestBuilding {
		t.Error("building should be placed at the cursor")
	}
	if g.Count(func(tl tile.Tile) bool { return tl.Cover == tile.TestBuilding }) != 1 {
		t.Error("dot should touch exactly one tile")
	}
}

func TestRectangleFootprint(t *testing.T) {
	testCases := []struct {
		name           string
		x0, y0, x1, y1 uint16
	}{
		{"forward", 1, 1, 4, 3},
		{"backward", 4, 3, 1, 1},
		{"single", 2, 2, 2, 2},
		{"row", 0, 4, 5, 4},
		{"column", 3, 5, 3, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := tile.NewGrid(8, 8)
			shape := interaction.Rectangle(interaction.ReplaceGround(tile.Sand))
			d := drag(tc.x0, tc.y0, tc.x1, tc.y1, true)

			want := (int(tile.Delta(tc.x0, tc.x1)) + 1) * (int(tile.Delta(tc.y0, tc.y1)) + 1)

			footprint := shape.Footprint(d)
			if len(footprint) != want {
				t.Errorf("footprint has %d tiles, expected %d", len(footprint), want)
			}
			seen := make(map[tile.Pos]bool)
			for _, p := range footprint {
				if seen[p] {
					t.Errorf("tile %v visited twice", p)
				}
				seen[p] = true
			}

			res := shape.Apply(g, d)
			if res.Touched != want || res.Changed != want {
				t.Errorf("EditResult = %+v, expected %d/%d", res, want, want)
			}
			if got := g.Count(func(tl tile.Tile) bool { return tl.Ground == tile.Sand }); got != want {
				t.Errorf("%d sand tiles, expected %d", got, want)
			}
		})
	}
}

func TestRoadLineVertical(t *testing.T) {
	g := tile.NewGrid(8, 8)
	interaction.RoadLine(tile.RoadGravel).Apply(g, drag(2, 2, 2, 5, true))

	expected := map[uint16]tile.Cover{
		2: gravel(tile.South),
		3: gravel(tile.North, tile.South),
		4: gravel(tile.North, tile.South),
		5: gravel(tile.North),
	}
	for y, want := range expected {
		if got := g.At(tile.P(2, y)).Cover; got != want {
			t.Errorf("y=%d: cover %v, expected %v", y, got, want)
		}
	}
	if n := g.Count(func(tl tile.Tile) bool { return tl.Cover.IsRoad() }); n != 4 {
		t.Errorf("%d road tiles, expected 4", n)
	}
}

func TestRoadLineHorizontal(t *testing.T) {
	g := tile.NewGrid(8, 8)
	// Dragging leftward builds the same strip; the cross axis is fixed to the
	// drag start's row even though the cursor drifted one row down.
	interaction.RoadLine(tile.RoadGravel).Apply(g, drag(5, 2, 2, 3, true))

	expected := map[uint16]tile.Cover{
		2: gravel(tile.East),
		3: gravel(tile.West, tile.East),
		4: gravel(tile.West, tile.East),
		5: gravel(tile.West),
	}
	for x, want := range expected {
		if got := g.At(tile.P(x, 2)).Cover; got != want {
			t.Errorf("x=%d: cover %v, expected %v", x, got, want)
		}
	}
	if g.At(tile.P(2, 3)).Cover.IsRoad() {
		t.Error("road must stay on the drag start's row")
	}
}

func TestRoadLineDegenerate(t *testing.T) {
	g := tile.NewGrid(8, 8)
	before := g.Clone()

	res := interaction.RoadLine(tile.RoadGravel).Apply(g, drag(3, 3, 3, 3, true))
	if res.Touched != 0 {
		t.Errorf("zero-length drag touched %d tiles", res.Touched)
	}
	if !g.Equal(before) {
		t.Error("zero-length drag must not change the grid")
	}
}

func TestRoadLineIdempotent(t *testing.T) {
	g := tile.NewGrid(8, 8)
	shape := interaction.RoadLine(tile.RoadGravel)
	d := drag(1, 6, 6, 6, true)

	shape.Apply(g, d)
	once := g.Clone()
	res := shape.Apply(g, d)

	if !g.Equal(once) {
		t.Error("second application changed the grid")
	}
	if res.Changed != 0 {
		t.Errorf("second application reported %d changes", res.Changed)
	}
}

func TestRoadLineCrossing(t *testing.T) {
	g := tile.NewGrid(8, 8)
	shape := interaction.RoadLine(tile.RoadGravel)

	shape.Apply(g, drag(1, 3, 5, 3, true))
	shape.Apply(g, drag(3, 1, 3, 5, true))

	if got, want := g.At(tile.P(3, 3)).Cover, gravel(tile.North, tile.East, tile.South, tile.West); got != want {
		t.Errorf("crossing = %v, expected %v", got, want)
	}
}

func TestRoadLineSkipsBlockedTiles(t *testing.T) {
	g := tile.NewGrid(8, 8)
	g.Tile(tile.P(3, 0)).Ground = tile.Water
	g.Tile(tile.P(4, 0)).Cover = tile.Tree

	interaction.RoadLine(tile.RoadGravel).Apply(g, drag(1, 0, 5, 0, true))

	if g.At(tile.P(3, 0)).Cover != tile.NoCover {
		t.Error("road must not be built on water")
	}
	if g.At(tile.P(4, 0)).Cover != tile.Tree {
		t.Error("road must not replace a tree")
	}
	if got, want := g.At(tile.P(2, 0)).Cover, gravel(tile.West, tile.East); got != want {
		t.Errorf("(2,0) = %v, expected %v", got, want)
	}
}

func TestOverlayFootprints(t *testing.T) {
	g := tile.NewGrid(8, 8)

	rect := interaction.Rectangle(interaction.ReplaceGround(tile.Water))
	if n := len(rect.Overlay(g, drag(1, 1, 3, 4, true))); n != 12 {
		t.Errorf("held rectangle overlay has %d cells, expected 12", n)
	}
	if cells := rect.Overlay(g, drag(1, 1, 3, 4, false)); len(cells) != 1 || cells[0].Pos != tile.P(3, 4) {
		t.Errorf("idle rectangle overlay = %v, expected cursor only", cells)
	}

	road := interaction.RoadLine(tile.RoadGravel)
	cells := road.Overlay(g, drag(2, 2, 6, 3, true))
	if len(cells) != 5 {
		t.Errorf("held road overlay has %d cells, expected 5", len(cells))
	}
	for _, c := range cells {
		if c.Pos.Y != 2 {
			t.Errorf("road overlay cell %v off the start row", c.Pos)
		}
	}
	idle := road.Overlay(g, drag(2, 2, 6, 3, false))
	if len(idle) != 1 || idle[0].Selection != interaction.SelectPlain {
		t.Errorf("idle road overlay = %v, expected plain cursor", idle)
	}

	// The held start tile is classified like any other road tile.
	if still := road.Overlay(g, drag(4, 4, 4, 4, true)); len(still) != 1 || still[0].Selection != interaction.SelectBuildable {
		t.Errorf("zero-length road overlay = %v, expected buildable start tile", still)
	}

	dot := interaction.Dot(interaction.BuildCover(tile.TestBuilding))
	if cells := dot.Overlay(g, drag(0, 0, 5, 5, true)); len(cells) != 1 {
		t.Errorf("dot overlay has %d cells, expected 1", len(cells))
	}
}

// The overlay must predict exactly which tiles the gesture will change.
func TestOverlayMatchesEdit(t *testing.T) {
	shapes := []interaction.InteractionShape{
		interaction.Rectangle(interaction.ReplaceGround(tile.Water)),
		interaction.Rectangle(interaction.BuildCover(tile.Tree)),
		interaction.Rectangle(interaction.DemolishCover()),
		interaction.Dot(interaction.BuildCover(tile.TestBuilding)),
		interaction.RoadLine(tile.RoadGravel),
	}

	seed := func() *tile.Grid {
		g := tile.NewGrid(6, 6)
		g.Tile(tile.P(1, 1)).Cover = tile.Tree
		g.Tile(tile.P(2, 2)).Ground = tile.Water
		g.Tile(tile.P(3, 1)).Cover = tile.TestBuilding
		g.Tile(tile.P(1, 3)).Ground = tile.Bricks
		return g
	}
	d := drag(1, 1, 4, 1, true)

	for _, shape := range shapes {
		t.Run(shape.String(), func(t *testing.T) {
			g := seed()
			before := g.Clone()
			overlay := shape.Overlay(g, d)
			if !g.Equal(before) {
				t.Fatal("overlay mutated the grid")
			}

			shape.Apply(g, d)
			for _, c := range overlay {
				changed := g.At(c.Pos) != before.At(c.Pos)
				accepted := c.Selection == interaction.SelectBuildable || c.Selection == interaction.SelectDestroy
				if accepted != changed {
					t.Errorf("%v: overlay %v but changed=%v", c.Pos, c.Selection, changed)
				}
			}
		})
	}
}
