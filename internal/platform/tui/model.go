package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsim/internal/core"
	"github.com/vovakirdan/gridsim/internal/editor"
	"github.com/vovakirdan/gridsim/internal/palette"
	"github.com/vovakirdan/gridsim/internal/render"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	statusDragStyle = statusStyle.
			Background(lipgloss.Color("130"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// paletteFrame is the box drawn behind the palette icons, in GUI cells.
var paletteFrame = core.NewRect(
	palette.OriginX-1, palette.OriginY-1,
	palette.Columns+2, palette.MaxTools/palette.Columns+2,
)

// Model is the Bubble Tea model for one editing session.
type Model struct {
	session  *editor.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	viewport core.Viewport
	atlas    render.Atlas
	raster   *Rasterizer
	keys     EditorKeyMap
	help     help.Model
	ticks    int
	cursorOn bool
	quitting bool
}

// NewModel creates a Bubble Tea model around an editor session.
func NewModel(session *editor.Session, cfg core.RuntimeConfig) Model {
	atlas := render.DefaultAtlas()
	g := session.Grid()

	return Model{
		session:  session,
		screen:   core.NewScreen(cfg.ScreenW, cfg.MapHeight()),
		config:   cfg,
		viewport: core.NewViewport(int(g.Width()), int(g.Height()), cfg.ScreenW, cfg.MapHeight()),
		atlas:    atlas,
		raster:   NewRasterizer(NewGlyphTable(atlas, DefaultSpriteGlyphs())),
		keys:     DefaultEditorKeyMap(),
		help:     help.New(),
		cursorOn: true,
	}
}

// Init starts the cursor blink loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if !m.session.PaletteOpen() {
			p := m.session.Nudge(action.Delta())
			m.viewport.Follow(int(p.X), int(p.Y))
		}
	case core.ActionStroke:
		if m.session.Dragging() {
			m.session.Release()
		} else {
			m.session.Press()
		}
	case core.ActionCancel:
		if m.session.PaletteOpen() {
			m.session.TogglePalette()
		} else {
			m.session.Cancel()
		}
	case core.ActionPalette:
		m.session.TogglePalette()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionNone:
		m.session.SelectKey(msg.String())
	}

	m.cursorOn = true
	return m, nil
}

// handleMouse maps terminal cells to grid cells, or to palette cells while
// the palette is open. Events below the map are clamped to its last row so
// a release over the status bar still ends the drag.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	onMap := msg.Y < m.screen.Height()

	if m.session.PaletteOpen() {
		if onMap && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if !m.session.ClickPalette(msg.X/core.CellW, msg.Y) &&
				!paletteFrame.Contains(msg.X/core.CellW, msg.Y) {
				m.session.TogglePalette()
			}
		}
		return m, nil
	}

	sy := core.Clamp(msg.Y, 0, core.Max(m.screen.Height()-1, 0))
	gx, gy := m.viewport.ScreenToGrid(msg.X, sy)
	m.session.MoveCursor(gx, gy)

	switch msg.Action {
	case tea.MouseActionPress:
		if !onMap {
			break
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.session.Press()
		case tea.MouseButtonRight:
			m.session.Cancel()
		case tea.MouseButtonWheelUp:
			m.viewport.Pan(0, -1)
		case tea.MouseButtonWheelDown:
			m.viewport.Pan(0, 1)
		}
	case tea.MouseActionRelease:
		m.session.Release()
	}

	m.cursorOn = true
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.config.MapHeight())
	m.viewport.Resize(msg.Width, m.config.MapHeight())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick blinks the idle cursor twice a second.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks++
	period := core.Max(m.config.TickRate/2, 1)
	if m.ticks%period == 0 {
		m.cursorOn = !m.cursorOn
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the map, the palette when open, the status bar and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawWorld()
	if m.session.PaletteOpen() {
		m.drawPalette()
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) drawWorld() {
	verts := m.session.Render(m.atlas)
	if !m.cursorOn && !m.session.Dragging() {
		// Skip the idle cursor marker: one overlay quad at the end.
		if n := len(verts) - render.VerticesPerQuad; n >= 0 {
			verts = verts[:n]
		}
	}
	m.raster.Draw(m.screen, verts, m.viewport.GridToScreen)
}

func (m Model) drawPalette() {
	// GUIMapper places cell x at column 2x, so the frame spans twice its width.
	frame := core.NewRect(
		paletteFrame.X*core.CellW, paletteFrame.Y,
		paletteFrame.W*core.CellW, paletteFrame.H,
	)
	m.screen.FillRect(frame, core.Cell{Rune: ' '})
	m.screen.DrawBox(frame, core.ColorWhite)
	m.screen.DrawText(frame.X+2, frame.Y, " tools ", core.ColorBrightWhite)

	m.raster.Draw(m.screen, m.session.RenderPalette(m.atlas), GUIMapper)

	tool, i := m.session.Tool()
	gx := palette.OriginX + i%palette.Columns
	gy := palette.OriginY + i/palette.Columns
	m.screen.SetCell(gx*core.CellW+1, gy, core.Cell{Rune: '◂', Color: core.ColorBrightYellow})
	m.screen.DrawText(frame.X+1, frame.Bottom(), " "+tool.Name+" ", core.ColorBrightYellow)
}

func (m Model) statusLine() string {
	tool, _ := m.session.Tool()
	drag := m.session.Drag()
	last := m.session.LastResult()

	text := fmt.Sprintf("%s  %s  at %s  last %d/%d changed",
		tool.Name, m.session.Shape(), drag.Pos, last.Changed, last.Touched)
	style := statusStyle
	if m.session.Dragging() {
		text = fmt.Sprintf("%s  drag %s → %s", text, drag.ClickStart, drag.Pos)
		style = statusDragStyle
	}
	return style.Width(core.Max(m.config.ScreenW, 1)).Render(text)
}

// Run starts the Bubble Tea program for a local session.
func Run(session *editor.Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(session, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // hover overlay needs motion without a button
	)

	_, err := p.Run()
	return err
}
