package palette

import (
	"github.com/vovakirdan/gridsim/internal/interaction"
	"github.com/vovakirdan/gridsim/internal/render"
	"github.com/vovakirdan/gridsim/internal/tile"
)

// DefaultTools returns the built-in tool set in palette order.
func DefaultTools() []Tool {
	ground := func(name, key string, g tile.Ground) Tool {
		return Tool{
			Name:  name,
			Key:   key,
			Icon:  render.GroundSprite(g),
			Shape: interaction.Rectangle(interaction.ReplaceGround(g)),
		}
	}

	return []Tool{
		ground("grass", "g", tile.Grass),
		ground("water", "w", tile.Water),
		ground("bricks", "b", tile.Bricks),
		{
			Name:  "demolish",
			Key:   "d",
			Icon:  render.SpriteBomb,
			Shape: interaction.Rectangle(interaction.DemolishCover()),
		},
		{
			Name:  "tree",
			Key:   "t",
			Icon:  render.SpriteTree,
			Shape: interaction.Rectangle(interaction.BuildCover(tile.Tree)),
		},
		{
			Name:  "building",
			Key:   "h",
			Icon:  render.SpriteTestBuilding,
			Shape: interaction.Dot(interaction.BuildCover(tile.TestBuilding)),
		},
		ground("gravel", "v", tile.Gravel),
		{
			Name:  "gravel-road",
			Key:   "r",
			Icon:  render.SpriteGravelRoadIcon,
			Shape: interaction.RoadLine(tile.RoadGravel),
		},
		ground("leaf-litter", "l", tile.LeafLitter),
		ground("swamp", "m", tile.Swamp),
		ground("sand", "s", tile.Sand),
	}
}

// Default returns a palette with the built-in tools.
func Default() *Palette {
	p, err := New(DefaultTools()...)
	if err != nil {
		panic(err) // built-in table is static
	}
	return p
}
