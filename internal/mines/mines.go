// Package mines implements the mine-detection board engine: cell state,
// mine placement, adjacency queries, the cascading reveal, and win/loss
// derivation. It contains no external dependencies (especially no Bubble
// Tea) so the rules stay pure and testable; everything about drawing and
// input lives in the platform layer.
package mines

import "errors"

// The engine fails in exactly two ways. Both are programming/configuration
// errors, not recoverable game states: callers should treat them as fatal
// for the attempted operation.
var (
	// ErrInvalidConfig is returned by New for board parameters that cannot
	// yield a playable game.
	ErrInvalidConfig = errors.New("mines: invalid board configuration")

	// ErrOutOfRange is returned by adjacency queries given a coordinate
	// outside the board. This signals a caller contract violation.
	ErrOutOfRange = errors.New("mines: coordinate out of range")
)

// Coord identifies one board square by row and column.
type Coord struct {
	Row, Col int
}

// cell carries the three stored facts for one square. Everything else the
// game needs (adjacent mine counts, found/erroneous flag status, the display
// character) is derived from these on demand.
type cell struct {
	mine     bool // set once during placement, never changes
	revealed bool // monotonic: never reverts to false
	flagged  bool // toggleable until revealed
}

// foundMine reports a correctly flagged mine.
func (c cell) foundMine() bool {
	return c.mine && c.flagged
}

// erroneousFlag reports a flag on a mine-free square.
func (c cell) erroneousFlag() bool {
	return !c.mine && c.flagged
}
