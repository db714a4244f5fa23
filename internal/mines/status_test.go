package mines

import "testing"

func TestWinRequiresExactFlagPartition(t *testing.T) {
	g, err := NewFromLayout([]string{
		"*.",
		".*",
	})
	if err != nil {
		t.Fatal(err)
	}

	if g.Status() != StatusInProgress {
		t.Fatalf("fresh board Status() = %v, want in progress", g.Status())
	}

	g.FlagAt(0, 0)
	if g.Status() != StatusInProgress {
		t.Errorf("one of two mines flagged: Status() = %v, want in progress", g.Status())
	}

	g.FlagAt(1, 1)
	if g.Status() != StatusWon {
		t.Errorf("both mines flagged, no erroneous flags: Status() = %v, want won", g.Status())
	}

	// An erroneous flag moves a won board back to in progress.
	g.FlagAt(0, 1)
	if g.Status() != StatusInProgress {
		t.Errorf("erroneous flag present: Status() = %v, want in progress", g.Status())
	}

	// Clearing it wins again: status is derived, never latched (except loss).
	g.FlagAt(0, 1)
	if g.Status() != StatusWon {
		t.Errorf("erroneous flag removed: Status() = %v, want won", g.Status())
	}
}

func TestWinBlockedByErroneousFlagAlone(t *testing.T) {
	g, err := NewFromLayout([]string{
		"*..",
		"...",
		"..*",
	})
	if err != nil {
		t.Fatal(err)
	}

	g.FlagAt(0, 0)
	g.FlagAt(2, 2)
	g.FlagAt(1, 1) // wrong
	if g.Status() != StatusInProgress {
		t.Errorf("Status() = %v with erroneous flag, want in progress", g.Status())
	}
}

func TestStatusDerivedNotStored(t *testing.T) {
	g, err := NewFromLayout([]string{
		"*.",
		".*",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Repeated queries with no intervening mutation must agree.
	for i := 0; i < 3; i++ {
		if g.Status() != StatusInProgress {
			t.Fatalf("query %d: Status() = %v, want in progress", i, g.Status())
		}
	}
}

func TestCharAt(t *testing.T) {
	g, err := NewFromLayout([]string{
		"*..",
		"...",
		".**",
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := g.CharAt(1, 1); got != SymbolHidden {
		t.Errorf("hidden square CharAt = %q, want %q", got, SymbolHidden)
	}

	g.FlagAt(0, 0)
	if got := g.CharAt(0, 0); got != SymbolFlag {
		t.Errorf("flagged square CharAt = %q, want %q", got, SymbolFlag)
	}

	g.StepAt(0, 2) // adjacency 0 up there? (0,2) neighbors (0,1),(1,1),(1,2): none mined
	if got := g.CharAt(0, 2); got != SymbolBlank {
		t.Errorf("revealed zero square CharAt = %q, want blank", got)
	}
	if got := g.CharAt(1, 2); got != '2' {
		t.Errorf("revealed numbered square CharAt = %q, want '2'", got)
	}

	g.StepAt(2, 2)
	if got := g.CharAt(2, 2); got != SymbolMine {
		t.Errorf("revealed mine CharAt = %q, want %q", got, SymbolMine)
	}

	if got := g.CharAt(-1, 5); got != SymbolBlank {
		t.Errorf("off-board CharAt = %q, want blank", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusInProgress, "in progress"},
		{StatusWon, "won"},
		{StatusLost, "lost"},
		{Status(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tc.status), got, tc.want)
		}
	}
}
