package tui

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsim/internal/core"
	"github.com/vovakirdan/gridsim/internal/editor"
	"github.com/vovakirdan/gridsim/internal/palette"
	"github.com/vovakirdan/gridsim/internal/tile"
)

func newTestModel(t *testing.T) (Model, *editor.Session) {
	t.Helper()
	s, err := editor.New(editor.Options{Width: 16, Height: 16})
	if err != nil {
		t.Fatalf("editor.New() failed: %v", err)
	}
	return NewModel(s, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 10}), s
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultEditorKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStroke},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionPalette},
		{"help", keyRunes("?"), core.ActionHelp},
		{"quit", keyRunes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"tool hotkey", keyRunes("w"), core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapKeysReserved(t *testing.T) {
	for _, b := range DefaultEditorKeyMap().FullHelp() {
		for _, kb := range b {
			for _, k := range kb.Keys() {
				if !slices.Contains(palette.ReservedKeys, k) {
					t.Errorf("key %q is bound by the editor but not reserved in the palette", k)
				}
			}
		}
	}
}

func TestKeyboardStroke(t *testing.T) {
	m, s := newTestModel(t)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	right := tea.KeyMsg{Type: tea.KeyRight}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m = send(m, keyRunes("w"), space, right, right, down, space)

	if n := s.Grid().Count(func(tl tile.Tile) bool { return tl.Ground == tile.Water }); n != 6 {
		t.Errorf("water tiles = %d, expected 6", n)
	}
	if s.Dragging() {
		t.Error("second space should finish the drag")
	}
	if !strings.Contains(m.View(), "water") {
		t.Error("status bar should name the active tool")
	}
}

func TestMouseStroke(t *testing.T) {
	m, s := newTestModel(t)

	m = send(m,
		keyRunes("s"),
		tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)

	// Screen columns 2..7 are grid columns 1..3, rows 1..3
	if n := s.Grid().Count(func(tl tile.Tile) bool { return tl.Ground == tile.Sand }); n != 9 {
		t.Errorf("sand tiles = %d, expected 9", n)
	}
	if got := s.Drag().Pos; got != tile.P(3, 3) {
		t.Errorf("cursor = %v, expected (3,3)", got)
	}
}

func TestMouseClampsToGrid(t *testing.T) {
	m, s := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 200, Height: 50})

	send(m, tea.MouseMsg{X: 150, Y: 40, Action: tea.MouseActionMotion})
	if got := s.Drag().Pos; got != tile.P(15, 15) {
		t.Errorf("cursor = %v, expected clamp to (15,15)", got)
	}
}

func TestReleaseBelowMapEndsDrag(t *testing.T) {
	m, s := newTestModel(t)
	statusRow := m.screen.Height()
	sand := func(tl tile.Tile) bool { return tl.Ground == tile.Sand }

	m = send(m,
		keyRunes("s"),
		tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 2, Y: statusRow, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	if s.Dragging() {
		t.Fatal("release over the status bar should end the drag")
	}
	// Rows 1..17 clamped to grid rows 1..15 in column 1
	painted := s.Grid().Count(sand)
	if painted != 15 {
		t.Errorf("sand tiles after drag = %d, expected 15", painted)
	}

	send(m,
		tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	if n := s.Grid().Count(sand) - painted; n != 1 {
		t.Errorf("single click painted %d tiles, expected 1", n)
	}
	if got := s.Drag().ClickStart; got != tile.P(10, 10) {
		t.Errorf("click start = %v, expected (10,10)", got)
	}
}

func TestPressBelowMapIgnored(t *testing.T) {
	m, s := newTestModel(t)
	send(m, tea.MouseMsg{X: 4, Y: m.screen.Height() + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if s.Dragging() {
		t.Error("press on the status rows should not start a drag")
	}
}

func TestPaletteClick(t *testing.T) {
	m, s := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if !s.PaletteOpen() {
		t.Fatal("tab should open the palette")
	}
	if !strings.Contains(m.View(), "tools") {
		t.Error("palette frame should be drawn")
	}

	// Tool 3 sits at GUI cell (OriginX+3, OriginY)
	send(m, tea.MouseMsg{
		X:      (palette.OriginX + 3) * core.CellW,
		Y:      palette.OriginY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if tool, _ := s.Tool(); tool.Name != "demolish" {
		t.Errorf("selected %q, expected demolish", tool.Name)
	}
	if s.PaletteOpen() {
		t.Error("palette should close after selection")
	}
}

func TestEscClosesPalette(t *testing.T) {
	m, s := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEsc})
	if s.PaletteOpen() {
		t.Error("esc should close the palette")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
}
