package mines

// FlagAt toggles the flag on (row, col). A revealed square is permanently
// past flagging, so the toggle silently does nothing there; pressing flag
// on an opened square is a normal user action, not an error. Off-board
// coordinates are likewise a silent no-op: the presentation driver clamps
// its cursor to the board, and mutators treat anything else the same as
// the other invalid-for-action inputs.
func (g *Grid) FlagAt(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	c := &g.cells[row][col]
	if c.revealed {
		return
	}
	c.flagged = !c.flagged
}

// StepAt is the single entry point for opening a square. In priority order:
// a flagged or already-revealed target is a no-op; a mine reveals that one
// square and trips the exploded flag (the losing, terminal transition);
// anything else starts the cascading reveal. Off-board coordinates are a
// silent no-op, same as FlagAt.
func (g *Grid) StepAt(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	c := &g.cells[row][col]
	switch {
	case c.flagged || c.revealed:
		return
	case c.mine:
		c.revealed = true
		g.exploded = true
	default:
		g.revealFrom(row, col)
	}
}

// revealFrom floods outward from (row, col): open the square, and if it has
// zero adjacent mines, continue into every neighbor. A numbered square
// blocks the cascade. The worklist replaces the naturally recursive form so
// large boards cannot exhaust the stack; behavior is identical because only
// the final revealed set is observable. Termination: revealed status is
// monotonic and already-revealed squares are skipped, so each square is
// expanded at most once — O(rows*cols) worst case.
//
// The cascade intentionally does not consult flags: a flagged square
// reachable from a zero-count neighbor is force-opened (its flag is left
// in place). Only the direct StepAt path protects flagged squares.
func (g *Grid) revealFrom(row, col int) {
	work := []Coord{{Row: row, Col: col}}
	for len(work) > 0 {
		at := work[len(work)-1]
		work = work[:len(work)-1]

		c := &g.cells[at.Row][at.Col]
		if c.revealed {
			continue
		}
		c.revealed = true

		if g.adjacentMines(at.Row, at.Col) > 0 {
			continue
		}
		work = append(work, g.neighbors(at.Row, at.Col)...)
	}
}
