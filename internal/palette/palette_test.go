package palette_test

import (
	"testing"

	"github.com/vovakirdan/gridsim/internal/interaction"
	"github.com/vovakirdan/gridsim/internal/palette"
	"github.com/vovakirdan/gridsim/internal/render"
	"github.com/vovakirdan/gridsim/internal/tile"
)

func TestDefaultPalette(t *testing.T) {
	p := palette.Default()

	if p.Len() != len(palette.DefaultTools()) {
		t.Errorf("Len() = %d, expected %d", p.Len(), len(palette.DefaultTools()))
	}

	road, ok := p.Get(7)
	if !ok || road.Shape != interaction.RoadLine(tile.RoadGravel) {
		t.Errorf("tool 7 = %+v, expected gravel road line", road)
	}
	building, ok := p.Get(5)
	if !ok || building.Shape.Kind != interaction.ShapeDot {
		t.Errorf("tool 5 = %+v, expected dot building", building)
	}
}

func TestGetBounds(t *testing.T) {
	p := palette.Default()

	for _, i := range []int{-1, p.Len(), palette.MaxTools, 1000} {
		if _, ok := p.Get(i); ok {
			t.Errorf("Get(%d) should fail", i)
		}
	}
}

func TestAtGUI(t *testing.T) {
	p := palette.Default()

	testCases := []struct {
		name   string
		gx, gy int
		index  int
		ok     bool
	}{
		{"first cell", 4, 4, 0, true},
		{"end of first row", 11, 4, 7, true},
		{"second row", 4, 5, 8, true},
		{"past last tool", 7, 5, 0, false},
		{"left of palette", 3, 4, 0, false},
		{"right of palette", 12, 4, 0, false},
		{"below palette", 4, 12, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i, ok := p.IndexAtGUI(tc.gx, tc.gy)
			if ok != tc.ok || (ok && i != tc.index) {
				t.Errorf("IndexAtGUI(%d, %d) = %d, %v; expected %d, %v", tc.gx, tc.gy, i, ok, tc.index, tc.ok)
			}
		})
	}
}

func TestByKeyAndFind(t *testing.T) {
	p := palette.Default()

	if i, ok := p.ByKey("t"); !ok || p.Tools()[i].Name != "tree" {
		t.Errorf("ByKey(\"t\") = %d, %v", i, ok)
	}
	if _, ok := p.ByKey("z"); ok {
		t.Error("ByKey(\"z\") should fail")
	}
	if _, ok := p.ByKey(""); ok {
		t.Error("empty key must not match")
	}
	if i, ok := p.Find("sand"); !ok || i != 10 {
		t.Errorf("Find(\"sand\") = %d, %v", i, ok)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	if _, err := palette.New(); err == nil {
		t.Error("empty palette should fail")
	}

	dup := []palette.Tool{
		{Name: "a", Key: "x"},
		{Name: "b", Key: "x"},
	}
	if _, err := palette.New(dup...); err == nil {
		t.Error("duplicate hotkeys should fail")
	}

	for _, k := range []string{"q", "?", " "} {
		if _, err := palette.New(palette.Tool{Name: "clash", Key: k}); err == nil {
			t.Errorf("reserved key %q should fail", k)
		}
	}

	tooMany := make([]palette.Tool, palette.MaxTools+1)
	if _, err := palette.New(tooMany...); err == nil {
		t.Error("oversized palette should fail")
	}
}

func TestRender(t *testing.T) {
	p := palette.Default()
	verts := p.Render(render.DefaultAtlas())
	if len(verts) != p.Len()*render.VerticesPerQuad {
		t.Fatalf("got %d vertices", len(verts))
	}
	x, y, _ := render.DecodeQuad(verts[0])
	if x != palette.OriginX || y != palette.OriginY {
		t.Errorf("first icon at (%d, %d)", x, y)
	}
}
