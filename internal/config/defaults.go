package config

import (
	_ "embed"
)

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

// DefaultMinesConfig returns the built-in configuration: the classic board
// table and the standard theme. Used as the last-resort fallback when even
// the embedded YAML fails to parse.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Boards: []BoardConfig{
			{ID: "beginner", Title: "Beginner", Rows: 9, Cols: 9, Mines: 10},
			{ID: "intermediate", Title: "Intermediate", Rows: 16, Cols: 16, Mines: 40},
			{ID: "expert", Title: "Expert", Rows: 16, Cols: 30, Mines: 99},
		},
		Theme: ThemeConfig{
			HighlightCursor: true,
			ColorDigits:     true,
		},
	}
}
