// Package store handles SQLite persistence of generation runs.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/wordforge/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			seed_count INTEGER NOT NULL,
			total_words INTEGER NOT NULL,
			min_length INTEGER NOT NULL,
			max_length INTEGER NOT NULL,
			avg_length REAL NOT NULL,
			base_words INTEGER NOT NULL,
			date_patterns INTEGER NOT NULL,
			mutations INTEGER NOT NULL,
			output_file TEXT NOT NULL,
			max_words INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ended_at ON runs(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed generation run.
func (s *Store) InsertRun(ctx context.Context, run model.RunRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, ended_at, seed_count, total_words, min_length, max_length, avg_length, base_words, date_patterns, mutations, output_file, max_words, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.Format(time.RFC3339Nano),
		run.EndedAt.Format(time.RFC3339Nano),
		run.SeedCount,
		run.TotalWords,
		run.MinLength,
		run.MaxLength,
		run.AvgLength,
		run.BaseWords,
		run.DatePats,
		run.Mutations,
		run.OutputFile,
		run.MaxWords,
		run.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns returns runs ordered oldest first, limited to the most
// recent limit entries when limit > 0.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	query := `SELECT id, started_at, ended_at, seed_count, total_words, min_length, max_length, avg_length, base_words, date_patterns, mutations, output_file, max_words, duration_ms
		FROM runs
		ORDER BY ended_at ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunRecord
	for rows.Next() {
		var run model.RunRecord
		var startedAt, endedAt string
		if err := rows.Scan(&run.RunID, &startedAt, &endedAt, &run.SeedCount, &run.TotalWords, &run.MinLength, &run.MaxLength, &run.AvgLength, &run.BaseWords, &run.DatePats, &run.Mutations, &run.OutputFile, &run.MaxWords, &run.DurationMs); err != nil {
			return nil, err
		}
		started, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		ended, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		run.StartedAt = started
		run.EndedAt = ended
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[len(runs)-limit:]
	}
	return runs, nil
}
