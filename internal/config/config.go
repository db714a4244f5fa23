// Package config provides YAML-based board configuration loading for the
// minesweeper platform.
package config

// MinesConfig contains the full game configuration: the board presets the
// menu offers and display options for the board renderer.
type MinesConfig struct {
	Boards []BoardConfig `yaml:"boards"`
	Theme  ThemeConfig   `yaml:"theme"`
}

// BoardConfig defines one playable board geometry.
type BoardConfig struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Mines int    `yaml:"mines"`
}

// ThemeConfig defines display options for the board renderer.
type ThemeConfig struct {
	HighlightCursor bool `yaml:"highlight_cursor"`
	ColorDigits     bool `yaml:"color_digits"`
}

// Board returns the preset with the given id, or false if absent.
func (c MinesConfig) Board(id string) (BoardConfig, bool) {
	for _, b := range c.Boards {
		if b.ID == id {
			return b, true
		}
	}
	return BoardConfig{}, false
}
