package minesweeper

import "github.com/vovakirdan/tui-mines/internal/mines"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	BoardID   string
	Rows      int
	Cols      int
	Mines     int
	CursorRow int
	CursorCol int
	Revealed  int
	Flags     int
	Status    mines.Status
}

// Snapshot returns the current snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		BoardID:   g.board.ID,
		Rows:      g.board.Rows,
		Cols:      g.board.Cols,
		Mines:     g.board.Mines,
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
	}
	if g.grid == nil {
		return snap
	}

	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			if g.grid.Revealed(r, c) {
				snap.Revealed++
			}
		}
	}
	snap.Flags = g.grid.FlagsPlaced()
	snap.Status = g.grid.Status()
	return snap
}
