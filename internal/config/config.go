// Package config provides YAML-based editor configuration: grid size, log
// settings, the edit journal switch and the tool palette table.
package config

import (
	"fmt"
	"strings"
)

// Grid dimension limits.
const (
	MinGridSize = 1
	MaxGridSize = 4096
)

// EditorConfig contains all configuration for the grid editor.
type EditorConfig struct {
	Grid     GridConfig    `yaml:"grid"`
	TickRate int           `yaml:"tick_rate"`
	Log      LogConfig     `yaml:"log"`
	Journal  JournalConfig `yaml:"journal"`
	Tools    []ToolConfig  `yaml:"tools"`
}

// GridConfig defines the fixed grid dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // used by the local editor; empty disables file logging
}

// JournalConfig controls the edit history journal.
type JournalConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Tool shapes.
const (
	ShapeDot       = "dot"
	ShapeRectangle = "rectangle"
	ShapeRoadLine  = "road_line"
)

// Tool actions for dot and rectangle shapes.
const (
	ActionReplaceGround = "replace_ground"
	ActionBuildCover    = "build_cover"
	ActionDemolish      = "demolish"
)

// ToolConfig describes one palette entry.
type ToolConfig struct {
	Name     string `yaml:"name"`
	Key      string `yaml:"key,omitempty"`
	Shape    string `yaml:"shape"`              // dot, rectangle, road_line
	Action   string `yaml:"action,omitempty"`   // replace_ground, build_cover, demolish
	Ground   string `yaml:"ground,omitempty"`   // for replace_ground, e.g. "Water"
	Cover    string `yaml:"cover,omitempty"`    // for build_cover, e.g. "Tree"
	Material string `yaml:"material,omitempty"` // for road_line, e.g. "Gravel"
}

// Validate checks invariants the schema cannot express.
func (c EditorConfig) Validate() error {
	if c.Grid.Width < MinGridSize || c.Grid.Width > MaxGridSize {
		return fmt.Errorf("config: grid width %d outside [%d, %d]", c.Grid.Width, MinGridSize, MaxGridSize)
	}
	if c.Grid.Height < MinGridSize || c.Grid.Height > MaxGridSize {
		return fmt.Errorf("config: grid height %d outside [%d, %d]", c.Grid.Height, MinGridSize, MaxGridSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick rate must be positive, got %d", c.TickRate)
	}
	if len(c.Tools) == 0 {
		return fmt.Errorf("config: at least one tool is required")
	}

	names := make(map[string]bool, len(c.Tools))
	for _, t := range c.Tools {
		if names[t.Name] {
			return fmt.Errorf("config: duplicate tool %q", t.Name)
		}
		names[t.Name] = true
	}
	return nil
}

// LogLevel returns the configured level normalized to lower case.
func (c EditorConfig) LogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Log.Level)
}
