// Package editor ties the tile grid, the drag state and the tool palette
// into one editing session. It is the only place that mutates a grid: each
// completed gesture is applied exactly once, on release.
package editor

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsim/internal/interaction"
	"github.com/vovakirdan/gridsim/internal/palette"
	"github.com/vovakirdan/gridsim/internal/render"
	"github.com/vovakirdan/gridsim/internal/storage"
	"github.com/vovakirdan/gridsim/internal/tile"
)

// Journal records completed gestures. *storage.Store implements it.
type Journal interface {
	RecordStroke(st storage.Stroke) (int64, error)
}

// Options configures a new Session.
type Options struct {
	Width, Height uint16
	Palette       *palette.Palette // defaults to palette.Default()
	Journal       Journal          // optional
	Logger        *log.Logger      // optional
	SessionID     string           // journal key; generated when empty
}

// Stats counts the gestures applied in a session.
type Stats struct {
	Strokes int
	Touched int
	Changed int
}

// Session is a single-user editing session. It is not safe for concurrent use.
type Session struct {
	id      string
	grid    *tile.Grid
	drag    interaction.DragState
	pal     *palette.Palette
	tool    int
	shape   interaction.InteractionShape
	journal Journal
	logger  *log.Logger

	paletteOpen bool
	last        interaction.EditResult
	stats       Stats
}

// New creates a session with a fresh grid of grass tiles and the first
// palette tool selected.
func New(opts Options) (*Session, error) {
	if opts.Width == 0 || opts.Height == 0 {
		return nil, fmt.Errorf("editor: invalid grid size %dx%d", opts.Width, opts.Height)
	}

	pal := opts.Palette
	if pal == nil {
		pal = palette.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := opts.SessionID
	if id == "" {
		id = fmt.Sprintf("local-%d", time.Now().UnixNano())
	}

	s := &Session{
		id:      id,
		grid:    tile.NewGrid(opts.Width, opts.Height),
		pal:     pal,
		journal: opts.Journal,
		logger:  logger,
	}
	s.SelectTool(0)
	return s, nil
}

// ID returns the session identifier used in the journal.
func (s *Session) ID() string {
	return s.id
}

// Grid returns the edited grid.
func (s *Session) Grid() *tile.Grid {
	return s.grid
}

// Drag returns the current pointer state.
func (s *Session) Drag() interaction.DragState {
	return s.drag
}

// Palette returns the tool table.
func (s *Session) Palette() *palette.Palette {
	return s.pal
}

// Tool returns the active tool and its palette index.
func (s *Session) Tool() (palette.Tool, int) {
	t, _ := s.pal.Get(s.tool)
	return t, s.tool
}

// Shape returns the active interaction shape.
func (s *Session) Shape() interaction.InteractionShape {
	return s.shape
}

// LastResult returns the outcome of the most recent gesture.
func (s *Session) LastResult() interaction.EditResult {
	return s.last
}

// Stats returns the running gesture totals.
func (s *Session) Stats() Stats {
	return s.stats
}

// Dragging reports whether a gesture is in progress.
func (s *Session) Dragging() bool {
	return s.drag.Left
}

// PaletteOpen reports whether the tool palette is shown.
func (s *Session) PaletteOpen() bool {
	return s.paletteOpen
}

// MoveCursor moves the pointer to grid cell (x, y), clamped to the grid.
func (s *Session) MoveCursor(x, y int) tile.Pos {
	p := s.grid.Clamp(x, y)
	s.drag.Move(p)
	return p
}

// Nudge moves the pointer by (dx, dy) cells.
func (s *Session) Nudge(dx, dy int) tile.Pos {
	return s.MoveCursor(int(s.drag.Pos.X)+dx, int(s.drag.Pos.Y)+dy)
}

// Press starts a gesture at the cursor. Ignored while the palette is open.
func (s *Session) Press() {
	if s.paletteOpen || s.drag.Left {
		return
	}
	s.drag.Press()
}

// Release finishes the gesture and applies the active shape once.
// ok is false when no gesture was in progress.
func (s *Session) Release() (res interaction.EditResult, ok bool) {
	if !s.drag.Left {
		return interaction.EditResult{}, false
	}
	s.drag.Release()

	res = s.shape.Apply(s.grid, s.drag)
	s.last = res
	s.stats.Strokes++
	s.stats.Touched += res.Touched
	s.stats.Changed += res.Changed

	tool, _ := s.Tool()
	s.logger.Debug("stroke applied",
		"tool", tool.Name,
		"shape", s.shape,
		"from", s.drag.ClickStart,
		"to", s.drag.Pos,
		"touched", res.Touched,
		"changed", res.Changed,
	)

	if res.Touched > 0 {
		s.record(tool.Name, res)
	}
	return res, true
}

func (s *Session) record(toolName string, res interaction.EditResult) {
	if s.journal == nil {
		return
	}
	_, err := s.journal.RecordStroke(storage.Stroke{
		SessionID: s.id,
		Tool:      toolName,
		Shape:     s.shape.Kind.String(),
		Touched:   res.Touched,
		Changed:   res.Changed,
	})
	if err != nil {
		s.logger.Warn("journal disabled", "error", err)
		s.journal = nil
	}
}

// Cancel abandons the gesture in progress without editing.
func (s *Session) Cancel() {
	if s.drag.Left {
		s.drag.Release()
		s.logger.Debug("stroke cancelled", "from", s.drag.ClickStart, "to", s.drag.Pos)
	}
}

// SelectTool activates palette tool i, replacing the shape wholesale.
// A gesture in progress is cancelled.
func (s *Session) SelectTool(i int) bool {
	t, ok := s.pal.Get(i)
	if !ok {
		return false
	}
	s.Cancel()
	s.tool = i
	s.shape = t.Shape
	s.logger.Debug("tool selected", "tool", t.Name, "shape", t.Shape)
	return true
}

// SelectKey activates the tool bound to hotkey k.
func (s *Session) SelectKey(k string) bool {
	i, ok := s.pal.ByKey(k)
	if !ok {
		return false
	}
	return s.SelectTool(i)
}

// TogglePalette shows or hides the tool palette. Opening it cancels any
// gesture in progress.
func (s *Session) TogglePalette() {
	s.paletteOpen = !s.paletteOpen
	if s.paletteOpen {
		s.Cancel()
	}
}

// ClickPalette selects the tool at GUI cell (gx, gy) and closes the
// palette. Clicks on empty palette cells do nothing.
func (s *Session) ClickPalette(gx, gy int) bool {
	if !s.paletteOpen {
		return false
	}
	i, ok := s.pal.IndexAtGUI(gx, gy)
	if !ok {
		return false
	}
	s.SelectTool(i)
	s.paletteOpen = false
	return true
}

// Render returns the world triangles: tiles plus the selection overlay.
func (s *Session) Render(atlas render.Atlas) []render.Vertex {
	return render.World(s.grid, s.shape, s.drag, atlas)
}

// RenderPalette returns the palette icon triangles in GUI space, or nil
// when the palette is closed.
func (s *Session) RenderPalette(atlas render.Atlas) []render.Vertex {
	if !s.paletteOpen {
		return nil
	}
	return s.pal.Render(atlas)
}
