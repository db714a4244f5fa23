package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if len(cfg.Boards) < 3 {
		t.Fatalf("default config has %d boards, want at least 3", len(cfg.Boards))
	}

	b, ok := cfg.Board("beginner")
	if !ok {
		t.Fatal("default config missing the beginner board")
	}
	if b.Rows != 9 || b.Cols != 9 || b.Mines != 10 {
		t.Errorf("beginner board = %dx%d/%d, want 9x9/10", b.Rows, b.Cols, b.Mines)
	}

	// Every shipped preset must satisfy the engine preconditions.
	for _, b := range cfg.Boards {
		if err := mines.Validate(b.Rows, b.Cols, b.Mines); err != nil {
			t.Errorf("board %q fails engine validation: %v", b.ID, err)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mines.yaml")

	data := `boards:
  - id: tiny
    title: Tiny
    rows: 4
    cols: 4
    mines: 3
theme:
  highlight_cursor: false
  color_digits: true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}

	b, ok := cfg.Board("tiny")
	if !ok {
		t.Fatal("custom config missing the tiny board")
	}
	if b.Rows != 4 || b.Cols != 4 || b.Mines != 3 {
		t.Errorf("tiny board = %dx%d/%d, want 4x4/3", b.Rows, b.Cols, b.Mines)
	}
	if cfg.Theme.HighlightCursor {
		t.Error("theme.highlight_cursor should be false")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with missing custom path should fail")
	}
}

func TestLoadRejectsUnplayableBoard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mines.yaml")

	data := `boards:
  - id: broken
    title: Broken
    rows: 1
    cols: 9
    mines: 5
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, mines.ErrInvalidConfig) {
		t.Errorf("Load error = %v, want to wrap mines.ErrInvalidConfig", err)
	}
}

func TestBoardLookup(t *testing.T) {
	cfg := DefaultMinesConfig()

	if _, ok := cfg.Board("expert"); !ok {
		t.Error("expert board should exist")
	}
	if _, ok := cfg.Board("missing"); ok {
		t.Error("missing board should not exist")
	}
}
