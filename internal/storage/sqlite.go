// Package storage provides SQLite-based persistence for solve records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Who finished a solve.
const (
	SolvedByHuman = "human"
	SolvedByAuto  = "auto"
)

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db *sql.DB
}

// SolveRecord is one completed solve of a board.
type SolveRecord struct {
	ID         int64
	PuzzleID   string // registry game ID, e.g. "fifteen"
	Rows       int
	Cols       int
	Moves      int
	DurationMS int64
	SolvedBy   string // SolvedByHuman or SolvedByAuto
	CreatedAt  time.Time
}

// SolveStats is the aggregated history of one puzzle variant.
type SolveStats struct {
	PuzzleID   string
	Count      int
	BestMoves  int
	AvgMoves   float64
	FastestMS  int64
	LastSolved time.Time
}

// Open creates or opens a SQLite database at the given path. It expands a
// leading ~, creates parent directories, and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

// migrate creates the database schema if it does not exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			solved_by TEXT NOT NULL DEFAULT 'human',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_puzzle ON solves(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(puzzle_id, moves ASC, duration_ms ASC);
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

// SaveSolve records a completed solve and returns the inserted record ID.
func (s *Store) SaveSolve(rec SolveRecord) (int64, error) {
	if rec.SolvedBy == "" {
		rec.SolvedBy = SolvedByHuman
	}
	result, err := s.db.Exec(
		`INSERT INTO solves (puzzle_id, rows, cols, moves, duration_ms, solved_by)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.PuzzleID, rec.Rows, rec.Cols, rec.Moves, rec.DurationMS, rec.SolvedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the top N solves for a puzzle, fewest moves first,
// ties broken by duration.
func (s *Store) BestSolves(puzzleID string, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, rows, cols, moves, duration_ms, solved_by, created_at
		 FROM solves
		 WHERE puzzle_id = ?
		 ORDER BY moves ASC, duration_ms ASC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// RecentSolves retrieves the most recent solves for a puzzle.
func (s *Store) RecentSolves(puzzleID string, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, rows, cols, moves, duration_ms, solved_by, created_at
		 FROM solves
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// FewestMoves returns the best (lowest) move count recorded for a puzzle,
// 0 if it has never been solved.
func (s *Store) FewestMoves(puzzleID string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE puzzle_id = ?",
		puzzleID,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best solve: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// Stats retrieves aggregated solve statistics for a puzzle.
func (s *Store) Stats(puzzleID string) (*SolveStats, error) {
	stats := &SolveStats{PuzzleID: puzzleID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0), COALESCE(MIN(duration_ms), 0)
		 FROM solves WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&stats.Count, &stats.BestMoves, &stats.AvgMoves, &stats.FastestMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastSolved any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE puzzle_id = ? ORDER BY created_at DESC LIMIT 1`,
		puzzleID,
	).Scan(&lastSolved)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last solved: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTimestamp(lastSolved)
	}

	return stats, nil
}

// ClearSolves deletes all solve records for a puzzle.
func (s *Store) ClearSolves(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

func scanSolves(rows *sql.Rows) ([]SolveRecord, error) {
	var entries []SolveRecord
	for rows.Next() {
		var e SolveRecord
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PuzzleID, &e.Rows, &e.Cols, &e.Moves,
			&e.DurationMS, &e.SolvedBy, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or a bare string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
