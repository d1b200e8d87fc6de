// Package render turns the tile grid and the selection overlay into a flat
// list of textured triangles. It resolves semantic sprites to atlas cells
// through an Atlas lookup and emits two triangles per cell; rasterization is
// left to the backend.
package render

import (
	"github.com/vovakirdan/gridsim/internal/interaction"
	"github.com/vovakirdan/gridsim/internal/tile"
)

// Sprite is a semantic image tag resolved to an atlas cell by an Atlas.
type Sprite uint16

const (
	SpriteTest Sprite = iota

	// Grounds
	SpriteGrass
	SpriteWater
	SpriteBricks
	SpriteGravel
	SpriteLeafLitter
	SpriteSwamp
	SpriteSand

	// Covers
	SpriteTree
	SpriteTestBuilding

	// Gravel road quarters, in Direction4 order
	SpriteGravelRoadNorth
	SpriteGravelRoadEast
	SpriteGravelRoadSouth
	SpriteGravelRoadWest

	// Selection overlay
	SpriteSelect
	SpriteSelectBuildable
	SpriteSelectUnbuildable
	SpriteSelectDestroy

	// Palette icons
	SpriteBomb
	SpriteGravelRoadIcon
)

// GroundSprite returns the sprite for a ground.
func GroundSprite(g tile.Ground) Sprite {
	switch g {
	case tile.Grass:
		return SpriteGrass
	case tile.Water:
		return SpriteWater
	case tile.Bricks:
		return SpriteBricks
	case tile.Gravel:
		return SpriteGravel
	case tile.LeafLitter:
		return SpriteLeafLitter
	case tile.Swamp:
		return SpriteSwamp
	case tile.Sand:
		return SpriteSand
	default:
		return SpriteTest
	}
}

// RoadSprite returns the sprite for one road quarter.
// Returns false for RoadNone, which draws nothing.
func RoadSprite(m tile.RoadMaterial, d tile.Direction4) (Sprite, bool) {
	switch m {
	case tile.RoadGravel:
		return SpriteGravelRoadNorth + Sprite(d.Index()), true
	default:
		return 0, false
	}
}

// CoverSprites returns the sprites drawn for a cover, bottom first.
// Roads draw one sprite per filled quarter.
func CoverSprites(c tile.Cover) []Sprite {
	switch c.Kind {
	case tile.CoverTree:
		return []Sprite{SpriteTree}
	case tile.CoverTestBuilding:
		return []Sprite{SpriteTestBuilding}
	case tile.CoverRoad:
		var out []Sprite
		for i, m := range c.Quarters {
			if s, ok := RoadSprite(m, tile.Dir4(i)); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// SelectionSprite returns the overlay sprite for a selection state.
func SelectionSprite(s interaction.Selection) Sprite {
	switch s {
	case interaction.SelectBuildable:
		return SpriteSelectBuildable
	case interaction.SelectUnbuildable:
		return SpriteSelectUnbuildable
	case interaction.SelectDestroy:
		return SpriteSelectDestroy
	default:
		return SpriteSelect
	}
}
