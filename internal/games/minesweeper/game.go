package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// hudHeight is the number of screen rows above the board (status line plus
// separator).
const hudHeight = 2

// Game implements the platform Game interface for one board variant. It
// owns the cursor and the input-to-engine mapping; all board rules live in
// the mines engine.
type Game struct {
	board Board
	theme config.ThemeConfig

	rng  *rand.Rand
	grid *mines.Grid
	tick uint64

	cursorRow int
	cursorCol int

	// Screen layout
	screenW    int
	screenH    int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool
}

// New creates a game for the given board preset.
func New(board Board) *Game {
	return &Game{board: board}
}

func init() {
	for _, b := range builtinBoards {
		board := b
		registry.Register(board.ID, func() registry.Game {
			return New(board)
		})
	}
	registry.Register("custom", func() registry.Game {
		return New(Board{ID: "custom", Title: "Custom", Rows: 9, Cols: 9, Mines: 10})
	})
}

// ID returns the board identifier.
func (g *Game) ID() string {
	return g.board.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.board.Title
}

// Reset builds a fresh grid from the config seed and recenters the cursor.
// Restarting is always "build a new grid": the engine never reuses one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.board, g.theme = resolveBoard(g.board.ID, g.board)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.cursorRow = 0
	g.cursorCol = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	grid, err := mines.New(g.board.Rows, g.board.Cols, g.board.Mines, g.rng)
	if err != nil {
		// Presets are validated at load; reaching this means a programming
		// error in the caller. Fall back to the smallest builtin board so
		// the session stays usable.
		g.board = builtinBoards[0]
		grid, _ = mines.New(g.board.Rows, g.board.Cols, g.board.Mines, g.rng)
	}
	g.grid = grid

	g.layout()
}

// layout computes board placement on screen and the too-small flag.
// Board columns are double-spaced for a square-ish look in terminal fonts.
func (g *Game) layout() {
	boardW := g.board.Cols*2 - 1
	boardH := g.board.Rows

	requiredW := boardW + 2
	requiredH := boardH + hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.mapOffsetX = (g.screenW - boardW) / 2
	g.mapOffsetY = hudHeight + (g.screenH-hudHeight-boardH)/2
}

// Step consumes one frame of buffered input. The board is turn-based: an
// empty frame changes nothing.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.grid == nil {
		return core.StepResult{State: g.State()}
	}

	over := g.grid.Status() != mines.StatusInProgress

	// Handle restart
	if input.Has(core.ActionRestart) && over {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Cursor movement stays available after game over so the player can
	// inspect the board; reveal/flag input is ignored once the game ends.
	g.moveCursor(input)

	if !over {
		if input.Has(core.ActionFlag) {
			g.grid.FlagAt(g.cursorRow, g.cursorCol)
		}
		if input.Has(core.ActionReveal) {
			g.grid.StepAt(g.cursorRow, g.cursorCol)
		}
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies movement actions, clamped to the board. The engine's
// mutators are only ever called with in-range coordinates.
func (g *Game) moveCursor(input core.InputFrame) {
	if input.Has(core.ActionUp) {
		g.cursorRow--
	}
	if input.Has(core.ActionDown) {
		g.cursorRow++
	}
	if input.Has(core.ActionLeft) {
		g.cursorCol--
	}
	if input.Has(core.ActionRight) {
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, g.board.Rows-1)
	g.cursorCol = core.Clamp(g.cursorCol, 0, g.board.Cols-1)
}

// State reports the derived game status to the platform.
func (g *Game) State() core.GameState {
	if g.grid == nil {
		return core.GameState{}
	}
	status := g.grid.Status()
	return core.GameState{
		GameOver: status != mines.StatusInProgress,
		Won:      status == mines.StatusWon,
	}
}

// Render draws the HUD, the board, and any overlay into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.grid == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch g.grid.Status() {
	case mines.StatusWon:
		g.renderOverlay(dst, "Field cleared!", "Press R to play again")
	case mines.StatusLost:
		g.renderOverlay(dst, "Boom!", "Press R to try again")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s %dx%d  Mines: %d  Flags: %d",
		g.board.Title, g.board.Rows, g.board.Cols, g.grid.NumMines(), g.grid.FlagsPlaced())
	dst.DrawText(0, 0, hud)

	status := g.grid.Status().String()
	dst.DrawText(dst.Width()-len(status)-1, 0, status)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws every square, the game-over mine paint, and the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	lost := g.grid.Status() == mines.StatusLost

	for r := 0; r < g.board.Rows; r++ {
		for c := 0; c < g.board.Cols; c++ {
			x := g.mapOffsetX + c*2
			y := g.mapOffsetY + r

			ch := g.grid.CharAt(r, c)
			color := g.charColor(ch)

			// After a loss the whole minefield is shown: hidden mines in
			// gray, the stepped mine in bright red. The engine itself only
			// reveals the stepped square.
			if lost && g.grid.MineAt(r, c) && !g.grid.Flagged(r, c) {
				ch = mines.SymbolMine
				color = core.ColorGray
				if g.grid.Revealed(r, c) {
					color = core.ColorBrightRed
				}
			}

			dst.SetCell(x, y, ch, color)
		}
	}

	if g.theme.HighlightCursor {
		x := g.mapOffsetX + g.cursorCol*2
		y := g.mapOffsetY + g.cursorRow
		cell := dst.GetCell(x, y)
		dst.SetCell(x, y, cell.Rune, core.ColorBrightYellow)
		dst.SetCell(x-1, y, '[', core.ColorBrightYellow)
		dst.SetCell(x+1, y, ']', core.ColorBrightYellow)
	}
}

// charColor maps an engine display symbol to its color. Digits follow the
// classic minesweeper palette.
func (g *Game) charColor(ch rune) core.Color {
	if !g.theme.ColorDigits {
		return core.ColorDefault
	}
	switch ch {
	case mines.SymbolFlag:
		return core.ColorBrightRed
	case mines.SymbolMine:
		return core.ColorBrightMagenta
	case mines.SymbolHidden:
		return core.ColorGray
	case '1':
		return core.ColorBrightBlue
	case '2':
		return core.ColorGreen
	case '3':
		return core.ColorBrightRed
	case '4':
		return core.ColorBlue
	case '5':
		return core.ColorRed
	case '6':
		return core.ColorCyan
	case '7':
		return core.ColorWhite
	case '8':
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// BoardGeometry reports the played geometry for the results ledger.
func (g *Game) BoardGeometry() (rows, cols, numMines int) {
	return g.board.Rows, g.board.Cols, g.board.Mines
}

// Cursor returns the current cursor position (for the platform HUD and
// tests).
func (g *Game) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

// Grid exposes the underlying board for inspection. Nil before Reset.
func (g *Game) Grid() *mines.Grid {
	return g.grid
}
