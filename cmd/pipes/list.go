package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List all line styles",
	Long:  `Shows every line style the screensaver can draw with.`,
	Run:   runStyles,
}

func runStyles(cmd *cobra.Command, args []string) {
	styles := registry.List()

	if len(styles) == 0 {
		fmt.Println("No styles available.")
		return
	}

	fmt.Println("Available styles:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	maxTitleLen := 5
	for _, s := range styles {
		maxNameLen = max(maxNameLen, len(s.Name))
		maxTitleLen = max(maxTitleLen, len(s.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, "Name", maxTitleLen, "Title", "Preview")
	fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, "----", maxTitleLen, "-----", "-------")

	// Print styles
	for _, s := range styles {
		fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, s.Name, maxTitleLen, s.Title, s.Glyphs.Preview())
	}

	fmt.Println()
	fmt.Println("Run 'pipes --style <name>' to use a style.")
}
