package config

import (
	_ "embed"
)

//go:embed defaults/editor.yaml
var defaultEditorYAML []byte

//go:embed defaults/editor.schema.json
var editorSchemaJSON string

// DefaultEditorConfig returns the default editor configuration.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		Grid: GridConfig{
			Width:  256,
			Height: 256,
		},
		TickRate: 30,
		Log: LogConfig{
			Level: "info",
			File:  "~/.gridsim/gridsim.log",
		},
		Journal: JournalConfig{
			Enabled: true,
		},
		Tools: []ToolConfig{
			{Name: "grass", Key: "g", Shape: ShapeRectangle, Action: ActionReplaceGround, Ground: "Grass"},
			{Name: "water", Key: "w", Shape: ShapeRectangle, Action: ActionReplaceGround, Ground: "Water"},
			{Name: "bricks", Key: "b", Shape: ShapeRectangle, Action: ActionReplaceGround, Ground: "Bricks"},
			{Name: "demolish", Key: "d", Shape: ShapeRectangle, Action: ActionDemolish},
			{Name: "tree", Key: "t", Shape: ShapeRectangle, Action: ActionBuildCover, Cover: "Tree"},
			{Name: "building", Key: "h", Shape: ShapeDot, Action: ActionBuildCover, Cover: "TestBuilding"},
			{Name: "gravel", Key: "v", Shape: ShapeRectangle, Action: ActionReplaceGround, Ground: "Gravel"},
			{Name: "gravel-road", Key: "r", Shape: ShapeRoadLine, Material: "Gravel"},
			{Name: "leaf-litter", Key: "l", Shape: ShapeRectangle, Action: ActionReplaceGround, Ground: "LeafLitter"},
			{Name: "swamp", Key: "m", Shape: ShapeRectangle, Action: ActionReplaceGround, Ground: "Swamp"},
			{Name: "sand", Key: "s", Shape: ShapeRectangle, Action: ActionReplaceGround, Ground: "Sand"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEditorYAML
}
