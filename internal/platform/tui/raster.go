package tui

import (
	"github.com/vovakirdan/gridsim/internal/core"
	"github.com/vovakirdan/gridsim/internal/render"
	"github.com/vovakirdan/gridsim/internal/tile"
)

// Glyph is the terminal picture of one atlas cell: two characters wide,
// matching core.CellW. Road glyphs carry a quarter instead of fixed runes
// and are composed with the other quarters of the same cell.
type Glyph struct {
	Runes [core.CellW]rune
	Color core.Color

	Road   bool
	Toward tile.Direction4
}

func fill(r1, r2 rune, c core.Color) Glyph {
	return Glyph{Runes: [core.CellW]rune{r1, r2}, Color: c}
}

func roadQuarter(d tile.Direction4) Glyph {
	return Glyph{Road: true, Toward: d, Color: core.ColorBrown}
}

// DefaultSpriteGlyphs returns the terminal look of every sprite.
func DefaultSpriteGlyphs() map[render.Sprite]Glyph {
	return map[render.Sprite]Glyph{
		render.SpriteTest: fill('?', '?', core.ColorMagenta),

		render.SpriteGrass:      fill('"', ' ', core.ColorGreen),
		render.SpriteWater:      fill('~', '~', core.ColorBlue),
		render.SpriteBricks:     fill('▤', '▤', core.ColorRed),
		render.SpriteGravel:     fill(':', ':', core.ColorGray),
		render.SpriteLeafLitter: fill(',', '\'', core.ColorOrange),
		render.SpriteSwamp:      fill('≈', '"', core.ColorOlive),
		render.SpriteSand:       fill('.', '.', core.ColorYellow),

		render.SpriteTree:         fill('♣', ' ', core.ColorBrightGreen),
		render.SpriteTestBuilding: fill('▛', '▜', core.ColorBrightWhite),

		render.SpriteGravelRoadNorth: roadQuarter(tile.North),
		render.SpriteGravelRoadEast:  roadQuarter(tile.East),
		render.SpriteGravelRoadSouth: roadQuarter(tile.South),
		render.SpriteGravelRoadWest:  roadQuarter(tile.West),

		render.SpriteBomb:           fill('✸', ' ', core.ColorBrightRed),
		render.SpriteGravelRoadIcon: fill('╪', '═', core.ColorBrown),

		render.SpriteSelect:            fill('[', ']', core.ColorBrightWhite),
		render.SpriteSelectBuildable:   fill('[', ']', core.ColorBrightGreen),
		render.SpriteSelectUnbuildable: fill('[', ']', core.ColorBrightRed),
		render.SpriteSelectDestroy:     fill('x', 'x', core.ColorOrange),
	}
}

// GlyphTable maps atlas cell ids back to glyphs. The rasterizer only sees
// vertices, so lookups go through the same atlas the quads were built with.
type GlyphTable map[uint8]Glyph

// NewGlyphTable resolves sprite glyphs through atlas.
func NewGlyphTable(atlas render.Atlas, sprites map[render.Sprite]Glyph) GlyphTable {
	t := make(GlyphTable, len(sprites))
	for s, g := range sprites {
		if id, ok := atlas.Cell(s); ok {
			t[id] = g
		}
	}
	return t
}

// roadRunes maps a quarter mask (bit i set for Direction4 i) to the left
// column glyph of a road cell.
var roadRunes = [16]rune{
	' ', '╵', '╶', '└',
	'╷', '│', '┌', '├',
	'╴', '┘', '─', '┴',
	'┐', '┤', '┬', '┼',
}

// CellMapper places a quad's cell on screen. ok is false to clip the quad.
type CellMapper func(x, y int) (sx, sy int, ok bool)

// GUIMapper places GUI cells at fixed screen positions.
func GUIMapper(x, y int) (int, int, bool) {
	return x * core.CellW, y, true
}

// Rasterizer paints render quads into a core.Screen. Later quads paint over
// earlier ones, except road quarters which merge within their cell.
type Rasterizer struct {
	glyphs GlyphTable
	roads  map[[2]int]uint8
}

// NewRasterizer creates a rasterizer with the given glyph table.
func NewRasterizer(glyphs GlyphTable) *Rasterizer {
	return &Rasterizer{
		glyphs: glyphs,
		roads:  make(map[[2]int]uint8),
	}
}

// Draw paints verts, six per quad, through mapCell.
func (r *Rasterizer) Draw(s *core.Screen, verts []render.Vertex, mapCell CellMapper) {
	clear(r.roads)

	for i := 0; i+render.VerticesPerQuad <= len(verts); i += render.VerticesPerQuad {
		x, y, id := render.DecodeQuad(verts[i])
		sx, sy, ok := mapCell(x, y)
		if !ok {
			continue
		}

		g, ok := r.glyphs[id]
		if !ok {
			g = fill('?', '?', core.ColorMagenta)
		}

		if !g.Road {
			for dx, ch := range g.Runes {
				s.SetCell(sx+dx, sy, core.Cell{Rune: ch, Color: g.Color})
			}
			delete(r.roads, [2]int{sx, sy})
			continue
		}

		at := [2]int{sx, sy}
		mask := r.roads[at] | 1<<g.Toward.Index()
		r.roads[at] = mask
		s.SetCell(sx, sy, core.Cell{Rune: roadRunes[mask], Color: g.Color})
		if mask&(1<<tile.East.Index()) != 0 {
			s.SetCell(sx+1, sy, core.Cell{Rune: '─', Color: g.Color})
		}
	}
}
