package minesweeper

import (
	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Board is one playable board geometry.
type Board struct {
	ID    string
	Title string
	Rows  int
	Cols  int
	Mines int
}

// Built-in presets, the classic table. The YAML config can override the
// geometry per id; these are the fallback when no config is found.
var builtinBoards = []Board{
	{ID: "beginner", Title: "Beginner", Rows: 9, Cols: 9, Mines: 10},
	{ID: "intermediate", Title: "Intermediate", Rows: 16, Cols: 16, Mines: 40},
	{ID: "expert", Title: "Expert", Rows: 16, Cols: 30, Mines: 99},
}

// Package-level selection state set by the CLI before game creation,
// following the platform convention for pre-creation options.
var (
	configPath  string
	customBoard *Board
)

// SetConfigPath sets the YAML config file path used at the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetCustomBoard configures the geometry played under the "custom" id.
// Rejects geometry the engine would refuse to construct.
func SetCustomBoard(rows, cols, numMines int) error {
	if err := mines.Validate(rows, cols, numMines); err != nil {
		return err
	}
	customBoard = &Board{ID: "custom", Title: "Custom", Rows: rows, Cols: cols, Mines: numMines}
	return nil
}

// BuiltinBoards returns the built-in preset table.
func BuiltinBoards() []Board {
	out := make([]Board, len(builtinBoards))
	copy(out, builtinBoards)
	return out
}

// resolveBoard returns the geometry to play for an id: the custom board
// for "custom", a config override when one exists, else the built-in
// preset. The loaded theme is returned alongside.
func resolveBoard(id string, fallback Board) (Board, config.ThemeConfig) {
	theme := config.DefaultMinesConfig().Theme

	if id == "custom" && customBoard != nil {
		return *customBoard, theme
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fallback, theme
	}
	theme = cfg.Theme

	if bc, ok := cfg.Board(id); ok {
		return Board{ID: bc.ID, Title: bc.Title, Rows: bc.Rows, Cols: bc.Cols, Mines: bc.Mines}, theme
	}
	return fallback, theme
}
