package palette

import (
	"fmt"

	"github.com/vovakirdan/gridsim/internal/config"
	"github.com/vovakirdan/gridsim/internal/interaction"
	"github.com/vovakirdan/gridsim/internal/render"
	"github.com/vovakirdan/gridsim/internal/tile"
)

// FromConfig builds a palette from configured tool entries.
func FromConfig(entries []config.ToolConfig) (*Palette, error) {
	tools := make([]Tool, 0, len(entries))
	for _, e := range entries {
		t, err := toolFromConfig(e)
		if err != nil {
			return nil, fmt.Errorf("palette: tool %q: %w", e.Name, err)
		}
		tools = append(tools, t)
	}
	return New(tools...)
}

func toolFromConfig(e config.ToolConfig) (Tool, error) {
	t := Tool{Name: e.Name, Key: e.Key}

	if e.Shape == config.ShapeRoadLine {
		m, ok := tile.ParseRoadMaterial(e.Material)
		if !ok || m == tile.RoadNone {
			return t, fmt.Errorf("unknown road material %q", e.Material)
		}
		t.Shape = interaction.RoadLine(m)
		t.Icon = render.SpriteGravelRoadIcon
		return t, nil
	}

	var ti interaction.TileInteraction
	switch e.Action {
	case config.ActionReplaceGround:
		g, ok := tile.ParseGround(e.Ground)
		if !ok {
			return t, fmt.Errorf("unknown ground %q", e.Ground)
		}
		ti = interaction.ReplaceGround(g)
		t.Icon = render.GroundSprite(g)
	case config.ActionBuildCover:
		c, ok := tile.ParseCover(e.Cover)
		if !ok || c.IsNone() {
			return t, fmt.Errorf("unknown cover %q", e.Cover)
		}
		ti = interaction.BuildCover(c)
		t.Icon = render.CoverSprites(c)[0]
	case config.ActionDemolish:
		ti = interaction.DemolishCover()
		t.Icon = render.SpriteBomb
	default:
		return t, fmt.Errorf("unknown action %q", e.Action)
	}

	switch e.Shape {
	case config.ShapeDot:
		t.Shape = interaction.Dot(ti)
	case config.ShapeRectangle:
		t.Shape = interaction.Rectangle(ti)
	default:
		return t, fmt.Errorf("unknown shape %q", e.Shape)
	}
	return t, nil
}
