package mines

import "testing"

func countRevealed(g *Grid) int {
	n := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Revealed(r, c) {
				n++
			}
		}
	}
	return n
}

func TestStepOnNumberedSquareDoesNotCascade(t *testing.T) {
	// Single mine in the center: every other square is adjacent to it, so
	// revealing a corner opens exactly that one square.
	g, err := NewFromLayout([]string{
		"...",
		".**", // second mine so the layout is constructible; (1,2) keeps
		"...", // (0,0) at adjacency 1 via (1,1)
	})
	if err != nil {
		t.Fatal(err)
	}

	g.StepAt(0, 0)

	if !g.Revealed(0, 0) {
		t.Fatal("StepAt(0,0) did not reveal the target")
	}
	if got := countRevealed(g); got != 1 {
		t.Errorf("revealed %d squares, want 1 (numbered square blocks cascade)", got)
	}
	if got := g.CharAt(0, 0); got != '1' {
		t.Errorf("CharAt(0,0) = %q, want '1'", got)
	}
}

func TestCascadeRevealsZeroRegionAndBorder(t *testing.T) {
	// Mine only in the far corner: stepping the opposite corner has zero
	// adjacent mines and must flood the whole board except the mine.
	g, err := NewFromLayout([]string{
		"...",
		"...",
		".**",
	})
	if err != nil {
		t.Fatal(err)
	}

	g.StepAt(0, 0)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			wantRevealed := !g.MineAt(r, c)
			if g.Revealed(r, c) != wantRevealed {
				t.Errorf("Revealed(%d, %d) = %v, want %v", r, c, g.Revealed(r, c), wantRevealed)
			}
		}
	}
	if g.Exploded() {
		t.Error("cascade must never reveal a mine")
	}
}

func TestCascadeStopsAtNumberedBorder(t *testing.T) {
	// Left half is a zero region; the column next to the mines is numbered
	// and must be revealed but not expanded past.
	g, err := NewFromLayout([]string{
		".....*",
		".....*",
		".....*",
	})
	if err != nil {
		t.Fatal(err)
	}

	g.StepAt(0, 0)

	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			if !g.Revealed(r, c) {
				t.Errorf("zero region / border square (%d, %d) not revealed", r, c)
			}
		}
		if g.Revealed(r, 5) {
			t.Errorf("mine square (%d, 5) revealed by cascade", r)
		}
	}
}

func TestRevealIsMonotonic(t *testing.T) {
	g, err := NewFromLayout([]string{
		"...",
		"...",
		".**",
	})
	if err != nil {
		t.Fatal(err)
	}

	g.StepAt(0, 0)
	before := countRevealed(g)

	// No follow-up action may unreveal anything.
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.FlagAt(r, c)
			g.StepAt(r, c)
			g.FlagAt(r, c)
		}
	}
	if after := countRevealed(g); after < before {
		t.Errorf("revealed count dropped from %d to %d", before, after)
	}
	if !g.Revealed(0, 0) {
		t.Error("previously revealed square reverted to hidden")
	}
}

func TestStepOnFlaggedSquareIsNoOp(t *testing.T) {
	g, err := NewFromLayout([]string{
		"*.",
		".*",
	})
	if err != nil {
		t.Fatal(err)
	}

	g.FlagAt(0, 0)
	g.StepAt(0, 0)

	if g.Revealed(0, 0) {
		t.Error("StepAt revealed a flagged square")
	}
	if g.Exploded() {
		t.Error("StepAt on a flagged mine exploded the board")
	}
}

func TestFlagOnRevealedSquareIsNoOp(t *testing.T) {
	g, err := NewFromLayout([]string{
		"..",
		"**",
	})
	if err != nil {
		t.Fatal(err)
	}

	g.StepAt(0, 0)
	if !g.Revealed(0, 0) {
		t.Fatal("setup: square not revealed")
	}

	g.FlagAt(0, 0)
	if g.Flagged(0, 0) {
		t.Error("flag toggled on a revealed square")
	}
}

func TestFlagToggles(t *testing.T) {
	g, err := NewFromLayout([]string{
		"*.",
		".*",
	})
	if err != nil {
		t.Fatal(err)
	}

	g.FlagAt(1, 0)
	if !g.Flagged(1, 0) {
		t.Fatal("first toggle did not set the flag")
	}
	g.FlagAt(1, 0)
	if g.Flagged(1, 0) {
		t.Error("second toggle did not clear the flag")
	}
}

func TestCascadeOpensFlaggedCell(t *testing.T) {
	// A flag does not protect against the cascade: only the direct StepAt
	// path checks it. The flag itself stays in place on the opened square.
	g, err := NewFromLayout([]string{
		"...",
		"...",
		".**",
	})
	if err != nil {
		t.Fatal(err)
	}

	g.FlagAt(0, 2) // flag a clear square inside the zero region's border
	g.StepAt(0, 0)

	if !g.Revealed(0, 2) {
		t.Error("cascade skipped the flagged square")
	}
	if !g.Flagged(0, 2) {
		t.Error("cascade cleared the flag; reveal must not touch flag state")
	}
	if g.CharAt(0, 2) != SymbolFlag {
		t.Errorf("CharAt(0,2) = %q, want flag symbol (flag wins over reveal)", g.CharAt(0, 2))
	}
}

func TestMutatorsIgnoreOutOfRange(t *testing.T) {
	g, err := NewFromLayout([]string{
		"*.",
		".*",
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, at := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-5, 9}} {
		g.FlagAt(at.Row, at.Col) // must not panic or mutate
		g.StepAt(at.Row, at.Col)
	}

	if countRevealed(g) != 0 || g.FlagsPlaced() != 0 || g.Exploded() {
		t.Error("out-of-range mutator call changed board state")
	}
}

func TestLossTerminality(t *testing.T) {
	g, err := NewFromLayout([]string{
		"*..",
		"...",
		"..*",
	})
	if err != nil {
		t.Fatal(err)
	}

	g.StepAt(0, 0)
	if !g.Exploded() {
		t.Fatal("stepping a mine did not explode the board")
	}
	if got := countRevealed(g); got != 1 {
		t.Errorf("losing step revealed %d squares, want only the mine", got)
	}
	if g.Status() != StatusLost {
		t.Fatalf("Status() = %v, want lost", g.Status())
	}

	// The game is over: later calls stay legal but cannot change the outcome.
	g.FlagAt(2, 2)
	g.StepAt(1, 1)
	g.FlagAt(1, 0)
	if g.Status() != StatusLost {
		t.Errorf("Status() = %v after post-loss calls, want lost", g.Status())
	}
}
