package mines

// Status is the three-way game outcome, derived fresh from board state on
// every query and never stored.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Display symbols produced by CharAt. The platform layer maps these runes
// to colors; the engine only decides which symbol a square shows.
const (
	SymbolHidden rune = '·'
	SymbolFlag   rune = '⚑'
	SymbolMine   rune = '*'
	SymbolBlank  rune = ' '
)

// Status derives the outcome: Lost iff a mine has been revealed; otherwise
// Won iff the flags partition exactly onto the mines (every mine flagged,
// no flag on a clear square); otherwise InProgress. Placing an erroneous
// flag after winning moves the status back to InProgress — only the
// exploded flag is terminal.
func (g *Grid) Status() Status {
	if g.exploded {
		return StatusLost
	}
	foundMines := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].erroneousFlag() {
				return StatusInProgress
			}
			if g.cells[r][c].foundMine() {
				foundMines++
			}
		}
	}
	if foundMines == g.numMines {
		return StatusWon
	}
	return StatusInProgress
}

// CharAt projects one square to its display symbol, with no mutation:
// flagged squares show the flag regardless of reveal or mine state, hidden
// squares the hidden marker, revealed mines the mine symbol, and revealed
// clear squares their adjacent-mine digit (blank for zero). Off-board
// coordinates render as blank.
func (g *Grid) CharAt(row, col int) rune {
	if !g.InBounds(row, col) {
		return SymbolBlank
	}
	c := g.cells[row][col]
	switch {
	case c.flagged:
		return SymbolFlag
	case !c.revealed:
		return SymbolHidden
	case c.mine:
		return SymbolMine
	}
	if n := g.adjacentMines(row, col); n > 0 {
		return rune('0' + n)
	}
	return SymbolBlank
}
