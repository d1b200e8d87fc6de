package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsim/internal/config"
	"github.com/vovakirdan/gridsim/internal/core"
	"github.com/vovakirdan/gridsim/internal/editor"
	"github.com/vovakirdan/gridsim/internal/platform/tui"
	"github.com/vovakirdan/gridsim/internal/storage"
)

var (
	flagWidth     int
	flagHeight    int
	flagNoJournal bool
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the editor in this terminal",
	Long: `Start an editing session on a fresh grass grid.

Controls:
  Mouse drag      - Apply the active tool on release
  Right click/Esc - Cancel the current drag
  Arrows          - Move the cursor
  Space/Enter     - Start or finish a keyboard drag
  Tab             - Open the tool palette
  <hotkey>        - Select a tool (see 'gridsim tools')
  ?               - Toggle full help
  Q/Ctrl+C        - Quit

Examples:
  gridsim edit
  gridsim edit --width 64 --height 32
  gridsim edit --log-level debug --no-journal`,
	Run: runEdit,
}

func init() {
	editCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width override")
	editCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height override")
	editCmd.Flags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record strokes")
}

func runEdit(_ *cobra.Command, _ []string) {
	cfg, pal := mustLoad()
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to a file so they do not tear the alt screen.
	logOut, closeLog, err := openLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logOut, closeLog = io.Discard, func() {}
	}
	defer closeLog()
	logger := newLogger(logOut, "gridsim", cfg)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := editor.Options{
		Width:   uint16(cfg.Grid.Width),
		Height:  uint16(cfg.Grid.Height),
		Palette: pal,
		Logger:  logger,
	}

	var store *storage.Store
	if cfg.Journal.Enabled && !flagNoJournal {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open journal database: %v\n", err)
			// Continue without journal - editing still works
			store = nil
		} else {
			opts.Journal = store
		}
	}

	session, err := editor.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session started", "id", session.ID(), "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height))

	runErr := tui.Run(session, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
	})

	stats := session.Stats()
	ended := logger.With("id", session.ID(), "strokes", stats.Strokes, "changed", stats.Changed)

	// Close store before potential exit
	if store != nil {
		// Differs from changed when the journal was disabled mid-session.
		journaled, qErr := store.SessionChanges(session.ID())
		if qErr != nil {
			ended.Warn("cannot read journaled changes", "err", qErr)
		}
		ended = ended.With("journaled", journaled)
		store.Close()
	}
	ended.Info("session ended")

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens path for appending. An empty path discards logs.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
