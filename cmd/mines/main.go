// mines is a terminal minesweeper: classic boards, custom geometry, and
// remote play over SSH.
//
// Usage:
//
//	mines list               - List available boards
//	mines play <board>       - Play a board
//	mines menu               - Start menu to pick boards interactively
//	mines serve              - Start SSH server for remote play
//	mines results <board>    - Show recent results for a board
//
// Global flags:
//
//	--fps <rate>    - Set UI refresh rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible minefields
//	--db <path>     - Set database path (default: ~/.mines/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import boards to register them
	_ "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Mines is a terminal minesweeper with the classic preset boards,
custom board geometry, a results ledger, and remote play over SSH.

Available commands:
  list     - Show all available boards
  play     - Play a specific board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  results  - View recent results

Examples:
  mines list
  mines play beginner
  mines play custom --rows 12 --cols 20 --mines 30
  mines menu
  mines serve --ssh :2222
  mines results expert`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "UI refresh rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mines/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
}
