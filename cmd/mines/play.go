package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagConfig string
	flagRows   int
	flagCols   int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play <board>",
	Short: "Play a board",
	Long: `Start playing the specified board.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Space/Enter      - Reveal square
  F/X              - Flag square
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Custom geometry (board id "custom"):
  --rows, --cols, --mines set the board; the engine rejects boards
  smaller than 2x2 or with fewer than 2 mines, and mine counts that
  exceed the square count.

Examples:
  mines play beginner
  mines play expert
  mines play custom --rows 12 --cols 20 --mines 30
  mines play beginner --config ./my-boards.yaml
  mines play expert --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	playCmd.Flags().IntVar(&flagRows, "rows", 9, "Rows for the custom board")
	playCmd.Flags().IntVar(&flagCols, "cols", 9, "Columns for the custom board")
	playCmd.Flags().IntVar(&flagMines, "mines", 10, "Mines for the custom board")
}

func runPlay(cmd *cobra.Command, args []string) {
	boardID := args[0]

	if !registry.Exists(boardID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", boardID)
		fmt.Fprintln(os.Stderr, "Run 'mines list' to see available boards.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply config path and custom geometry before creation
	minesweeper.SetConfigPath(flagConfig)
	if boardID == "custom" {
		if err := minesweeper.SetCustomBoard(flagRows, flagCols, flagMines); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	game, err := registry.Create(boardID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating board: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", runErr)
		os.Exit(1)
	}
}
