package editor_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsim/internal/editor"
	"github.com/vovakirdan/gridsim/internal/palette"
	"github.com/vovakirdan/gridsim/internal/render"
	"github.com/vovakirdan/gridsim/internal/storage"
	"github.com/vovakirdan/gridsim/internal/tile"
)

type fakeJournal struct {
	strokes []storage.Stroke
	err     error
}

func (j *fakeJournal) RecordStroke(st storage.Stroke) (int64, error) {
	if j.err != nil {
		return 0, j.err
	}
	j.strokes = append(j.strokes, st)
	return int64(len(j.strokes)), nil
}

func newSession(t *testing.T, j editor.Journal) *editor.Session {
	t.Helper()
	s, err := editor.New(editor.Options{Width: 8, Height: 8, Journal: j, SessionID: "test"})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func stroke(s *editor.Session, x0, y0, x1, y1 int) {
	s.MoveCursor(x0, y0)
	s.Press()
	s.MoveCursor(x1, y1)
	s.Release()
}

func TestNewRejectsEmptyGrid(t *testing.T) {
	if _, err := editor.New(editor.Options{Width: 0, Height: 4}); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestNewDefaults(t *testing.T) {
	s := newSession(t, nil)

	tool, i := s.Tool()
	if i != 0 || tool.Name != "grass" {
		t.Errorf("initial tool = %d %q, expected 0 grass", i, tool.Name)
	}
	if s.Grid().Count(func(tl tile.Tile) bool { return tl == tile.NewTile() }) != 64 {
		t.Error("new grid should be all grass")
	}
}

func TestMoveCursorClamps(t *testing.T) {
	s := newSession(t, nil)

	tests := []struct {
		x, y int
		want tile.Pos
	}{
		{3, 4, tile.P(3, 4)},
		{-5, 2, tile.P(0, 2)},
		{100, 100, tile.P(7, 7)},
	}
	for _, tc := range tests {
		if got := s.MoveCursor(tc.x, tc.y); got != tc.want {
			t.Errorf("MoveCursor(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}

	s.MoveCursor(0, 0)
	if got := s.Nudge(-1, 1); got != tile.P(0, 1) {
		t.Errorf("Nudge = %v", got)
	}
}

func TestReleaseAppliesOnce(t *testing.T) {
	j := &fakeJournal{}
	s := newSession(t, j)
	s.SelectKey("w")

	s.MoveCursor(1, 1)
	s.Press()
	s.MoveCursor(3, 2)

	// Nothing changes while dragging
	if n := s.Grid().Count(func(tl tile.Tile) bool { return tl.Ground == tile.Water }); n != 0 {
		t.Fatalf("grid edited before release: %d water tiles", n)
	}

	res, ok := s.Release()
	if !ok || res.Touched != 6 || res.Changed != 6 {
		t.Fatalf("Release() = %+v, %v", res, ok)
	}
	if _, ok := s.Release(); ok {
		t.Error("second Release should report no gesture")
	}

	if len(j.strokes) != 1 {
		t.Fatalf("journal has %d strokes, expected 1", len(j.strokes))
	}
	want := storage.Stroke{SessionID: "test", Tool: "water", Shape: "Rectangle", Touched: 6, Changed: 6}
	if j.strokes[0] != want {
		t.Errorf("journal stroke = %+v, expected %+v", j.strokes[0], want)
	}
	if st := s.Stats(); st.Strokes != 1 || st.Changed != 6 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestCancelLeavesGridUntouched(t *testing.T) {
	j := &fakeJournal{}
	s := newSession(t, j)
	s.SelectKey("w")
	before := s.Grid().Clone()

	s.MoveCursor(0, 0)
	s.Press()
	s.MoveCursor(5, 5)
	s.Cancel()
	if _, ok := s.Release(); ok {
		t.Error("Release after Cancel should do nothing")
	}

	// Re-pressing starts a fresh gesture rather than resuming
	s.Press()
	s.Cancel()

	if !s.Grid().Equal(before) {
		t.Error("cancelled gestures must not edit the grid")
	}
	if len(j.strokes) != 0 {
		t.Errorf("cancelled gestures journaled: %v", j.strokes)
	}
}

func TestDegenerateRoadIsNotJournaled(t *testing.T) {
	j := &fakeJournal{}
	s := newSession(t, j)
	s.SelectKey("r")

	stroke(s, 2, 2, 2, 2)
	if len(j.strokes) != 0 {
		t.Errorf("zero-length road journaled: %v", j.strokes)
	}

	stroke(s, 2, 2, 2, 4)
	if len(j.strokes) != 1 || j.strokes[0].Shape != "RoadLine" || j.strokes[0].Changed != 3 {
		t.Errorf("journal = %+v", j.strokes)
	}
}

func TestJournalFailureDegrades(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	j := &fakeJournal{err: errors.New("disk full")}

	s, err := editor.New(editor.Options{Width: 4, Height: 4, Journal: j, Logger: logger})
	if err != nil {
		t.Fatal(err)
	}

	stroke(s, 0, 0, 1, 1)
	stroke(s, 0, 0, 1, 1)

	if n := strings.Count(buf.String(), "journal disabled"); n != 1 {
		t.Errorf("expected one warning, got %d in %q", n, buf.String())
	}
}

func TestSelectTool(t *testing.T) {
	s := newSession(t, nil)

	if s.SelectTool(-1) || s.SelectTool(s.Palette().Len()) {
		t.Error("out-of-range tools should not select")
	}
	if s.SelectKey("") || s.SelectKey("#") {
		t.Error("unknown keys should not select")
	}

	s.MoveCursor(1, 1)
	s.Press()
	if !s.SelectKey("t") {
		t.Fatal("SelectKey(t) failed")
	}
	if s.Dragging() {
		t.Error("switching tools should cancel the gesture")
	}
	tool, _ := s.Tool()
	if s.Shape() != tool.Shape {
		t.Error("shape should be replaced by the tool's shape")
	}
}

func TestPalette(t *testing.T) {
	s := newSession(t, nil)
	atlas := render.DefaultAtlas()

	if s.RenderPalette(atlas) != nil {
		t.Error("closed palette should render nothing")
	}
	if s.ClickPalette(palette.OriginX, palette.OriginY) {
		t.Error("clicks on a closed palette should be ignored")
	}

	s.MoveCursor(1, 1)
	s.Press()
	s.TogglePalette()
	if !s.PaletteOpen() || s.Dragging() {
		t.Fatal("opening the palette should cancel the gesture")
	}
	s.Press()
	if s.Dragging() {
		t.Error("Press should be ignored while the palette is open")
	}

	if n := len(s.RenderPalette(atlas)); n != s.Palette().Len()*render.VerticesPerQuad {
		t.Errorf("palette vertices = %d", n)
	}

	if s.ClickPalette(0, 0) {
		t.Error("click outside the palette area should not select")
	}
	// Second row, first column: tool index 8
	if !s.ClickPalette(palette.OriginX, palette.OriginY+1) {
		t.Fatal("ClickPalette failed")
	}
	if _, i := s.Tool(); i != palette.Columns {
		t.Errorf("selected tool %d, expected %d", i, palette.Columns)
	}
	if s.PaletteOpen() {
		t.Error("palette should close after a selection")
	}
}

func TestRenderIncludesOverlay(t *testing.T) {
	s := newSession(t, nil)
	atlas := render.DefaultAtlas()

	// 64 grounds plus one overlay cell under the idle cursor
	if n := len(s.Render(atlas)); n != 65*render.VerticesPerQuad {
		t.Errorf("Render() emitted %d vertices", n)
	}

	s.SelectKey("w")
	s.MoveCursor(0, 0)
	s.Press()
	s.MoveCursor(1, 1)
	if n := len(s.Render(atlas)); n != 68*render.VerticesPerQuad {
		t.Errorf("Render() while dragging emitted %d vertices", n)
	}
}
