package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsim/internal/platform/tui"
	"github.com/vovakirdan/gridsim/internal/storage"
)

var (
	flagInteractive bool
	flagRecent      int
	flagClear       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the edit journal",
	Long: `Display per-tool totals from the edit journal, optionally followed by
the most recent strokes.

Examples:
  gridsim history
  gridsim history --recent 20
  gridsim history --interactive
  gridsim history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the journal in a table view")
	historyCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list this many recent strokes")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole journal")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Journal cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history view: %v\n", err)
			os.Exit(1)
		}
		return
	}

	summaries, err := store.ToolSummaries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving journal: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Edit History")
	fmt.Println()

	if len(summaries) == 0 {
		fmt.Println("No strokes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gridsim edit' and draw something!")
		return
	}

	fmt.Printf("  %-16s  %-7s  %-7s  %-7s  %s\n", "Tool", "Strokes", "Touched", "Changed", "Last used")
	fmt.Printf("  %-16s  %-7s  %-7s  %-7s  %s\n", "----", "-------", "-------", "-------", "---------")
	for _, s := range summaries {
		fmt.Printf("  %-16s  %-7d  %-7d  %-7d  %s\n",
			s.Tool, s.Strokes, s.Touched, s.Changed, s.LastUsed.Format("2006-01-02 15:04"))
	}

	if flagRecent <= 0 {
		return
	}

	recent, err := store.RecentStrokes(flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving strokes: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Recent strokes")
	fmt.Println()
	for _, e := range recent {
		fmt.Printf("  %s  %-20s  %-16s  %-9s  %d/%d\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.SessionID, e.Tool, e.Shape, e.Changed, e.Touched)
	}
}
