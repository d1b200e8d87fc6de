package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tool palette",
	Long:  `Shows every tool of the configured palette with its hotkey and shape.`,
	Run:   runTools,
}

func runTools(_ *cobra.Command, _ []string) {
	_, pal := mustLoad()
	tools := pal.Tools()

	fmt.Println("Available tools:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range tools {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "Key", maxNameLen, "Name", "Shape")
	fmt.Printf("  %-3s  %-*s  %s\n", "---", maxNameLen, "----", "-----")

	for _, t := range tools {
		hotkey := t.Key
		if hotkey == "" {
			hotkey = "-"
		}
		fmt.Printf("  %-3s  %-*s  %s\n", hotkey, maxNameLen, t.Name, t.Shape)
	}

	fmt.Println()
	fmt.Println("Press tab in 'gridsim edit' to pick tools with the mouse.")
}
