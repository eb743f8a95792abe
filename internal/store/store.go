// Package store keeps a history of runs in a SQLite database so a run can be
// compared with the previous one.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/funvibe/patcover/internal/suite"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		fixture TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_fixture ON runs(fixture);

	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		case_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		verdict TEXT NOT NULL,
		pass BOOLEAN NOT NULL,
		PRIMARY KEY (run_id, case_id)
	);
`

// Store is a run history backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. The directory is created if
// needed; ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases alive and serializes
	// writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema in %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun stores the results of one run of a fixture and returns the new
// run id.
func (s *Store) RecordRun(ctx context.Context, fixturePath string, results []*suite.Result) (uuid.UUID, error) {
	id := uuid.New()
	summary := suite.Summarize(results)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, fixture, created_at, passed, failed) VALUES (?, ?, ?, ?, ?)`,
		id.String(), fixturePath, time.Now().UTC(), summary.Passed, summary.Failed); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (run_id, case_id, kind, verdict, pass) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, id.String(), r.Case.ID(), r.Case.Kind, r.Verdict(), r.Pass); err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert result %s: %w", r.Case.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// Run is one stored run.
type Run struct {
	ID      uuid.UUID
	Fixture string
	Passed  int
	Failed  int
}

// LastRun returns the most recent run of fixturePath. The second result is
// false when the fixture was never run.
func (s *Store) LastRun(ctx context.Context, fixturePath string) (Run, bool, error) {
	var (
		run Run
		id  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, fixture, passed, failed FROM runs WHERE fixture = ? ORDER BY seq DESC LIMIT 1`,
		fixturePath).Scan(&id, &run.Fixture, &run.Passed, &run.Failed)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("failed to query last run of %s: %w", fixturePath, err)
	}
	run.ID, err = uuid.Parse(id)
	if err != nil {
		return Run{}, false, fmt.Errorf("corrupt run id %q: %w", id, err)
	}
	return run, true, nil
}

// LastVerdicts returns the verdicts of the most recent run of fixturePath,
// keyed by case id. It is empty when the fixture was never run.
func (s *Store) LastVerdicts(ctx context.Context, fixturePath string) (map[string]string, error) {
	verdicts := make(map[string]string)
	run, ok, err := s.LastRun(ctx, fixturePath)
	if err != nil || !ok {
		return verdicts, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT case_id, verdict FROM results WHERE run_id = ?`, run.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query verdicts of run %s: %w", run.ID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var caseID, verdict string
		if err := rows.Scan(&caseID, &verdict); err != nil {
			return nil, fmt.Errorf("failed to read verdict: %w", err)
		}
		verdicts[caseID] = verdict
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read verdicts: %w", err)
	}
	return verdicts, nil
}
