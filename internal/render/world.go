package render

import (
	"github.com/vovakirdan/gridsim/internal/interaction"
	"github.com/vovakirdan/gridsim/internal/tile"
)

// World returns the triangles for every tile of g followed by the selection
// overlay of shape for the current drag state. Tiles are emitted in
// row-major order, ground first and cover on top.
func World(g *tile.Grid, shape interaction.InteractionShape, drag interaction.DragState, atlas Atlas) []Vertex {
	out := make([]Vertex, 0, g.Len()*VerticesPerQuad*2)

	g.Each(func(p tile.Pos, t tile.Tile) {
		out = appendSprite(out, atlas, GroundSprite(t.Ground), int(p.X), int(p.Y))
		for _, s := range CoverSprites(t.Cover) {
			out = appendSprite(out, atlas, s, int(p.X), int(p.Y))
		}
	})

	return append(out, Overlay(g, shape, drag, atlas)...)
}

// Overlay returns only the selection-overlay triangles.
func Overlay(g *tile.Grid, shape interaction.InteractionShape, drag interaction.DragState, atlas Atlas) []Vertex {
	cells := shape.Overlay(g, drag)
	out := make([]Vertex, 0, len(cells)*VerticesPerQuad)
	for _, c := range cells {
		out = appendSprite(out, atlas, SelectionSprite(c.Selection), int(c.Pos.X), int(c.Pos.Y))
	}
	return out
}

// Icons lays sprites out in rows of perRow cells starting at grid cell
// (originX, originY). Used for the tool palette.
func Icons(sprites []Sprite, perRow, originX, originY int, atlas Atlas) []Vertex {
	out := make([]Vertex, 0, len(sprites)*VerticesPerQuad)
	for i, s := range sprites {
		out = appendSprite(out, atlas, s, originX+i%perRow, originY+i/perRow)
	}
	return out
}

func appendSprite(out []Vertex, atlas Atlas, s Sprite, x, y int) []Vertex {
	q := Quad(resolve(atlas, s), x, y)
	return append(out, q[:]...)
}
