// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only outcomes are recorded; in-progress boards are never saved.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// ResultEntry represents one finished game.
type ResultEntry struct {
	ID        int64
	BoardID   string
	Won       bool
	Rows      int
	Cols      int
	Mines     int
	CreatedAt time.Time
}

// BoardStats aggregates the ledger for one board.
type BoardStats struct {
	Played int
	Won    int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id TEXT NOT NULL,
			won INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_board_id ON results(board_id);
		CREATE INDEX IF NOT EXISTS idx_results_recent ON results(board_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game for the given board.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(boardID string, won bool, rows, cols, mines int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (board_id, won, rows, cols, mines) VALUES (?, ?, ?, ?, ?)",
		boardID, won, rows, cols, mines,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Results retrieves the most recent results for the given board,
// newest first.
func (s *Store) Results(boardID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, board_id, won, rows, cols, mines, created_at
		 FROM results
		 WHERE board_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		boardID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.BoardID, &e.Won, &e.Rows, &e.Cols, &e.Mines, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns played/won totals for the given board.
func (s *Store) Stats(boardID string) (BoardStats, error) {
	var stats BoardStats
	err := s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(won), 0) FROM results WHERE board_id = ?",
		boardID,
	).Scan(&stats.Played, &stats.Won)
	if err != nil {
		return BoardStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return stats, nil
}

// ClearResults deletes all results for the given board.
func (s *Store) ClearResults(boardID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE board_id = ?", boardID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
