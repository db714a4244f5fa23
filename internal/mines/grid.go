package mines

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// MinBoardSide is the smallest playable board dimension.
const MinBoardSide = 2

// MinMines is the smallest playable mine count.
const MinMines = 2

// Grid is the board: a fixed rows×cols matrix of cells, the mine count
// chosen at construction, and the one-way exploded flag. A Grid is built
// once per game and mutated in place; restarting means building a new one.
type Grid struct {
	rows, cols int
	numMines   int
	exploded   bool
	cells      [][]cell
}

// Validate checks board parameters against the construction preconditions.
// Exposed separately so config loading can reject bad presets before play.
func Validate(rows, cols, numMines int) error {
	switch {
	case rows < MinBoardSide:
		return fmt.Errorf("%w: rows %d < %d", ErrInvalidConfig, rows, MinBoardSide)
	case cols < MinBoardSide:
		return fmt.Errorf("%w: cols %d < %d", ErrInvalidConfig, cols, MinBoardSide)
	case numMines < MinMines:
		return fmt.Errorf("%w: mines %d < %d", ErrInvalidConfig, numMines, MinMines)
	case numMines > rows*cols:
		return fmt.Errorf("%w: mines %d > %d cells", ErrInvalidConfig, numMines, rows*cols)
	}
	return nil
}

// New builds a grid with every cell unrevealed, unflagged, and mine-free,
// then lays numMines mines. Placement picks a uniform random subset without
// replacement: an index set of every board cell, repeatedly drawing one at
// random and removing it, so no square can be chosen twice. A nil rng gets
// a time-based seed.
func New(rows, cols, numMines int, rng *rand.Rand) (*Grid, error) {
	if err := Validate(rows, cols, numMines); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Grid{
		rows:     rows,
		cols:     cols,
		numMines: numMines,
		cells:    make([][]cell, rows),
	}
	for r := range g.cells {
		g.cells[r] = make([]cell, cols)
	}

	indices := make([]int, rows*cols)
	for i := range indices {
		indices[i] = i
	}
	for placed := 0; placed < numMines; placed++ {
		pick := rng.Intn(len(indices))
		idx := indices[pick]
		indices[pick] = indices[len(indices)-1]
		indices = indices[:len(indices)-1]
		g.cells[idx/cols][idx%cols].mine = true
	}

	return g, nil
}

// NewFromLayout builds a grid from an explicit layout, one string per row:
// '*' for a mine, anything else for a clear square. Rows are padded to the
// longest row. Used by tests and tooling that need a known mine pattern.
func NewFromLayout(layout []string) (*Grid, error) {
	rows := len(layout)
	cols := 0
	for _, row := range layout {
		if len(row) > cols {
			cols = len(row)
		}
	}
	numMines := strings.Count(strings.Join(layout, ""), "*")
	if err := Validate(rows, cols, numMines); err != nil {
		return nil, err
	}

	g := &Grid{
		rows:     rows,
		cols:     cols,
		numMines: numMines,
		cells:    make([][]cell, rows),
	}
	for r := range g.cells {
		g.cells[r] = make([]cell, cols)
		for c, ch := range layout[r] {
			if ch == '*' {
				g.cells[r][c].mine = true
			}
		}
	}
	return g, nil
}

// Rows returns the board height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the board width.
func (g *Grid) Cols() int { return g.cols }

// NumMines returns the mine count fixed at construction.
func (g *Grid) NumMines() int { return g.numMines }

// Exploded reports whether a mine has been revealed through StepAt.
func (g *Grid) Exploded() bool { return g.exploded }

// InBounds reports whether (row, col) is on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// MineAt reports whether the square holds a mine. False off-board.
func (g *Grid) MineAt(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col].mine
}

// Revealed reports whether the square has been opened. False off-board.
func (g *Grid) Revealed(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col].revealed
}

// Flagged reports whether the square carries a flag. False off-board.
func (g *Grid) Flagged(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row][col].flagged
}

// FlagsPlaced counts the flags currently on the board.
func (g *Grid) FlagsPlaced() int {
	n := 0
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c].flagged {
				n++
			}
		}
	}
	return n
}

// Neighbors returns the valid board coordinates horizontally, vertically,
// or diagonally adjacent to (row, col): 3 for a corner, 5 for an edge,
// 8 for an interior square. The center itself is excluded. An off-board
// center is a caller contract violation and returns ErrOutOfRange.
func (g *Grid) Neighbors(row, col int) ([]Coord, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return g.neighbors(row, col), nil
}

// neighbors is the infallible form for engine-internal use with in-bounds
// coordinates.
func (g *Grid) neighbors(row, col int) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.InBounds(row+dr, col+dc) {
				out = append(out, Coord{Row: row + dr, Col: col + dc})
			}
		}
	}
	return out
}

// NumAdjacentMines counts the mined neighbors of (row, col). Pure query,
// recomputed on every call; the mine layout never changes after
// construction, so no cache is kept.
func (g *Grid) NumAdjacentMines(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return g.adjacentMines(row, col), nil
}

func (g *Grid) adjacentMines(row, col int) int {
	n := 0
	for _, nb := range g.neighbors(row, col) {
		if g.cells[nb.Row][nb.Col].mine {
			n++
		}
	}
	return n
}
