// Package storage provides SQLite-based persistence for completion times
// and run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID         int64
	RunID      string
	Outcome    string // "win" or "loss"
	Tenure     int
	Hearts     int
	Level      int
	PassesUsed int
	Elapsed    time.Duration
	CreatedAt  time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_times (
			key TEXT PRIMARY KEY,
			millis INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			outcome TEXT NOT NULL,
			tenure INTEGER NOT NULL DEFAULT 0,
			hearts INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			passes_used INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_outcome ON runs(outcome, elapsed_ms);
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

// BestTime returns the stored best duration for key.
// The boolean is false when nothing is stored.
func (s *Store) BestTime(key string) (time.Duration, bool, error) {
	var millis int64
	err := s.db.QueryRow("SELECT millis FROM best_times WHERE key = ?", key).Scan(&millis)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	return time.Duration(millis) * time.Millisecond, true, nil
}

// RecordTime stores d under key if it is strictly smaller than the stored
// value, or if nothing is stored. It reports whether d became the new best.
// Durations are compared at millisecond precision.
func (s *Store) RecordTime(key string, d time.Duration) (bool, error) {
	millis := d.Milliseconds()

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var stored int64
	err = tx.QueryRow("SELECT millis FROM best_times WHERE key = ?", key).Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return false, fmt.Errorf("storage: cannot query best time: %w", err)
	case millis >= stored:
		return false, nil
	}

	_, err = tx.Exec(
		`INSERT INTO best_times (key, millis, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET millis = excluded.millis, updated_at = excluded.updated_at`,
		key, millis,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save best time: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit best time: %w", err)
	}
	return true, nil
}

// ClearBestTime deletes the stored best for key.
func (s *Store) ClearBestTime(key string) error {
	_, err := s.db.Exec("DELETE FROM best_times WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("storage: cannot clear best time: %w", err)
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, outcome, tenure, hearts, level, passes_used, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Outcome, run.Tenure, run.Hearts, run.Level, run.PassesUsed, run.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, run_id, outcome, tenure, hearts, level, passes_used, elapsed_ms, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// FastestWins retrieves the quickest winning runs.
func (s *Store) FastestWins(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, run_id, outcome, tenure, hearts, level, passes_used, elapsed_ms, created_at
		 FROM runs
		 WHERE outcome = 'win'
		 ORDER BY elapsed_ms ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var elapsedMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Outcome, &r.Tenure, &r.Hearts, &r.Level,
			&r.PassesUsed, &elapsedMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
