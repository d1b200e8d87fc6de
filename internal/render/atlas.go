package render

// AtlasColumns is the number of cells per atlas row (and rows per atlas).
const AtlasColumns = 16

// Atlas resolves a sprite to a cell id in a 16x16 texture atlas.
// Cell ids encode the column in the low nibble and the row in the high one.
type Atlas interface {
	Cell(s Sprite) (id uint8, ok bool)
}

// AtlasTable is a static sprite-to-cell lookup.
type AtlasTable map[Sprite]uint8

// Cell implements Atlas.
func (t AtlasTable) Cell(s Sprite) (uint8, bool) {
	id, ok := t[s]
	return id, ok
}

// DefaultAtlas returns the layout of the bundled atlas.
func DefaultAtlas() AtlasTable {
	return AtlasTable{
		SpriteTest:       0x00,
		SpriteGrass:      0x01,
		SpriteWater:      0x02,
		SpriteBricks:     0x03,
		SpriteGravel:     0x04,
		SpriteLeafLitter: 0x05,
		SpriteSwamp:      0x06,
		SpriteSand:       0x07,

		SpriteTree:         0x10,
		SpriteTestBuilding: 0x11,

		SpriteGravelRoadNorth: 0x20,
		SpriteGravelRoadEast:  0x21,
		SpriteGravelRoadSouth: 0x22,
		SpriteGravelRoadWest:  0x23,

		SpriteBomb:           0x30,
		SpriteGravelRoadIcon: 0x31,

		SpriteSelect:            0xF0,
		SpriteSelectBuildable:   0xF1,
		SpriteSelectUnbuildable: 0xF2,
		SpriteSelectDestroy:     0xF3,
	}
}

// resolve looks s up in a, falling back to the test cell so a missing
// entry stays visible instead of vanishing.
func resolve(a Atlas, s Sprite) uint8 {
	if id, ok := a.Cell(s); ok {
		return id
	}
	return 0
}
