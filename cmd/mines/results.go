package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var flagResultsLimit int

var resultsCmd = &cobra.Command{
	Use:   "results <board>",
	Short: "Show recent results for a board",
	Long: `Display recent finished games for the specified board.

Examples:
  mines results beginner
  mines results expert --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of results to show")
}

func runResults(cmd *cobra.Command, args []string) {
	boardID := args[0]

	if !registry.Exists(boardID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", boardID)
		fmt.Fprintln(os.Stderr, "Run 'mines list' to see available boards.")
		os.Exit(1)
	}

	game, err := registry.Create(boardID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Results(boardID, flagResultsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play %s' to record the first one!\n", boardID)
		return
	}

	fmt.Printf("  %-8s  %-12s  %s\n", "Outcome", "Board", "Date")
	fmt.Printf("  %-8s  %-12s  %s\n", "-------", "-----", "----")

	for _, entry := range entries {
		outcome := "Lost"
		if entry.Won {
			outcome = "Won"
		}
		geometry := fmt.Sprintf("%dx%d/%d", entry.Rows, entry.Cols, entry.Mines)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-12s  %s\n", outcome, geometry, dateStr)
	}

	stats, err := store.Stats(boardID)
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Won %d of %d games\n", stats.Won, stats.Played)
	}
}
