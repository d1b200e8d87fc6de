// Package palette holds the tool table shown by the tool picker. The table
// is statically sized and every lookup is bounds checked, so a click outside
// the palette or past the last tool simply selects nothing.
package palette

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/gridsim/internal/interaction"
	"github.com/vovakirdan/gridsim/internal/render"
)

// Palette layout in GUI cells.
const (
	MaxTools = 64 // 8x8 palette area
	Columns  = 8
	OriginX  = 4
	OriginY  = 4
)

// ReservedKeys are bound by the editor controls and cannot be tool hotkeys.
var ReservedKeys = []string{
	"up", "down", "left", "right",
	" ", "enter", "esc", "tab", "?", "q", "ctrl+c",
}

// Tool is one selectable editing tool.
type Tool struct {
	Name  string
	Key   string // hotkey, may be empty
	Icon  render.Sprite
	Shape interaction.InteractionShape
}

// Palette is a fixed-capacity, ordered tool table.
type Palette struct {
	tools [MaxTools]Tool
	count int
}

// New builds a palette from tools in display order.
func New(tools ...Tool) (*Palette, error) {
	if len(tools) == 0 {
		return nil, fmt.Errorf("palette: no tools")
	}
	if len(tools) > MaxTools {
		return nil, fmt.Errorf("palette: %d tools exceed capacity %d", len(tools), MaxTools)
	}

	p := &Palette{count: len(tools)}
	keys := make(map[string]string)
	for i, t := range tools {
		if slices.Contains(ReservedKeys, t.Key) {
			return nil, fmt.Errorf("palette: key %q of %q is reserved by the editor", t.Key, t.Name)
		}
		if t.Key != "" {
			if other, dup := keys[t.Key]; dup {
				return nil, fmt.Errorf("palette: key %q bound to both %q and %q", t.Key, other, t.Name)
			}
			keys[t.Key] = t.Name
		}
		p.tools[i] = t
	}
	return p, nil
}

// Len returns the number of tools.
func (p *Palette) Len() int {
	return p.count
}

// Get returns the tool at index i.
func (p *Palette) Get(i int) (Tool, bool) {
	if i < 0 || i >= p.count {
		return Tool{}, false
	}
	return p.tools[i], true
}

// Tools returns the tools in display order.
func (p *Palette) Tools() []Tool {
	out := make([]Tool, p.count)
	copy(out, p.tools[:p.count])
	return out
}

// IndexAtGUI maps a GUI cell to a tool index inside the palette area.
func (p *Palette) IndexAtGUI(gx, gy int) (int, bool) {
	if gx < OriginX || gx >= OriginX+Columns || gy < OriginY || gy >= OriginY+MaxTools/Columns {
		return 0, false
	}
	i := (gx - OriginX) + (gy-OriginY)*Columns
	if i >= p.count {
		return 0, false
	}
	return i, true
}

// AtGUI returns the tool drawn at GUI cell (gx, gy).
func (p *Palette) AtGUI(gx, gy int) (Tool, bool) {
	i, ok := p.IndexAtGUI(gx, gy)
	if !ok {
		return Tool{}, false
	}
	return p.tools[i], true
}

// ByKey returns the index of the tool bound to hotkey k.
func (p *Palette) ByKey(k string) (int, bool) {
	if k == "" {
		return 0, false
	}
	for i := 0; i < p.count; i++ {
		if p.tools[i].Key == k {
			return i, true
		}
	}
	return 0, false
}

// Find returns the index of the tool with the given name.
func (p *Palette) Find(name string) (int, bool) {
	for i := 0; i < p.count; i++ {
		if p.tools[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// Render returns the palette icons as triangles in GUI space.
func (p *Palette) Render(atlas render.Atlas) []render.Vertex {
	icons := make([]render.Sprite, p.count)
	for i := 0; i < p.count; i++ {
		icons[i] = p.tools[i].Icon
	}
	return render.Icons(icons, Columns, OriginX, OriginY, atlas)
}
