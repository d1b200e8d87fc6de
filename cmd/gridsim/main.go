// gridsim is a terminal tile editor: paint grounds, place covers and draw
// roads on a fixed-size grid, locally or over SSH.
//
// Usage:
//
//	gridsim edit       - Open the editor in this terminal
//	gridsim serve      - Start SSH server, one private grid per connection
//	gridsim tools      - List the tool palette with hotkeys
//	gridsim history    - Show the edit journal
//
// Global flags:
//
//	--config <path>     - Editor config YAML (default: search ~/.gridsim/configs, ./configs)
//	--db <path>         - Journal database path (default: ~/.gridsim/history.db)
//	--log-level <lvl>   - Override log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsim/internal/config"
	"github.com/vovakirdan/gridsim/internal/palette"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsim",
	Short: "gridsim - edit tile maps in your terminal",
	Long: `gridsim is a terminal tile editor. Pick a tool, drag over the grid and
release to apply: grounds and covers fill rectangles, buildings go on
single tiles and roads follow the dominant drag axis.

Available commands:
  edit     - Open the editor locally
  serve    - Start SSH server for remote editing
  tools    - Show the tool palette
  history  - View the edit journal

Examples:
  gridsim edit
  gridsim edit --config ./configs/editor.yaml
  gridsim serve --ssh :2222
  gridsim history --interactive`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to editor config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridsim/history.db", "Path to journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(historyCmd)
}

// mustLoad loads the editor config and builds its palette, exiting on error.
func mustLoad() (config.EditorConfig, *palette.Palette) {
	cfg, err := config.LoadEditor(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	pal, err := palette.FromConfig(cfg.Tools)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building tool palette: %v\n", err)
		os.Exit(1)
	}
	return cfg, pal
}

// newLogger creates a logger at the configured level, honoring --log-level.
func newLogger(w io.Writer, prefix string, cfg config.EditorConfig) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	name := cfg.LogLevel()
	if flagLogLevel != "" {
		name = flagLogLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", name)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
