package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagReset bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session history",
	Long: `Display recent screensaver sessions and lifetime totals.

Opens an interactive table when stdout is a terminal, otherwise prints
plain text.

Examples:
  pipes stats
  pipes stats --plain --limit 5
  pipes stats --reset`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Sessions to print in plain mode")
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded sessions")
}

func runStats(cmd *cobra.Command, args []string) {
	// Open session history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printStats(store)
}

func printStats(store *storage.Store) {
	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Session History")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pipes' to start one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-7s  %4s  %5s  %7s  %6s  %s\n", "Date", "Style", "FPS", "Pipes", "Spawned", "Clears", "Duration")
	fmt.Printf("  %-16s  %-7s  %4s  %5s  %7s  %6s  %s\n", "----", "-----", "---", "-----", "-------", "------", "--------")

	// Print sessions
	for _, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-7s  %4d  %5d  %7d  %6d  %s\n",
			dateStr, s.Style, s.FrameRate, s.Pipes, s.Spawned, s.Clears, s.Duration.Round(time.Second))
	}

	// Show totals
	fmt.Println()
	if totals, err := store.Totals(); err == nil {
		fmt.Println(tui.TotalsLine(totals))
	}
}
