package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows a list of all registered boards with their geometry.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	boards := registry.List()

	if len(boards) == 0 {
		fmt.Println("No boards available.")
		return
	}

	// Geometry per preset id
	geometry := make(map[string]string)
	for _, b := range minesweeper.BuiltinBoards() {
		geometry[b.ID] = fmt.Sprintf("%dx%d, %d mines", b.Rows, b.Cols, b.Mines)
	}
	geometry["custom"] = "set with --rows/--cols/--mines"

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, b := range boards {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Board")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, b := range boards {
		fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, b.ID, b.Title, geometry[b.ID])
	}

	fmt.Println()
	fmt.Println("Run 'mines play <id>' to play a board.")
}
