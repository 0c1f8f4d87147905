package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

const createResults = `CREATE TABLE IF NOT EXISTS bench_result (
	run_id      TEXT    NOT NULL,
	kind        TEXT    NOT NULL,
	points      INTEGER NOT NULL,
	build_ns    INTEGER NOT NULL,
	nearest_ns  INTEGER NOT NULL,
	range_ns    INTEGER NOT NULL,
	queries     INTEGER NOT NULL,
	ranges      INTEGER NOT NULL,
	mismatches  INTEGER NOT NULL,
	misses      INTEGER NOT NULL,
	seed        INTEGER NOT NULL,
	created_at  TEXT    NOT NULL,
	PRIMARY KEY (run_id, kind)
)`

// resultStore persists benchmark results in SQLite.
type resultStore struct {
	db *sql.DB
}

// openResultStore opens the database at dsn and creates the results table
// if needed.
func openResultStore(ctx context.Context, dsn string) (*resultStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "spatialbench: opening %s", dsn)
	}
	if _, err := db.ExecContext(ctx, createResults); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "spatialbench: creating bench_result")
	}
	return &resultStore{db: db}, nil
}

// Save writes the results of one run in a single transaction.
func (s *resultStore) Save(
	ctx context.Context, runID uuid.UUID, seed int64, at time.Time, results []Result,
) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "spatialbench: saving results")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO bench_result
		(run_id, kind, points, build_ns, nearest_ns, range_ns, queries, ranges, mismatches, misses, seed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "spatialbench: saving results")
	}
	defer stmt.Close()
	for _, r := range results {
		if _, err = stmt.ExecContext(ctx, runID.String(), r.Kind.String(), r.Points,
			r.Build.Nanoseconds(), r.Nearest.Nanoseconds(), r.Range.Nanoseconds(),
			r.Queries, r.Ranges, r.Mismatches, r.Misses, seed, at.UTC().Format(time.RFC3339),
		); err != nil {
			return errors.Wrapf(err, "spatialbench: saving %v result", r.Kind)
		}
	}
	return errors.Wrap(tx.Commit(), "spatialbench: committing results")
}

// Mismatches returns the total number of mismatches recorded for a run.
func (s *resultStore) Mismatches(ctx context.Context, runID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(mismatches), 0) FROM bench_result WHERE run_id = ?`, runID.String(),
	).Scan(&n)
	return n, errors.Wrap(err, "spatialbench: reading results")
}

func (s *resultStore) Close() error {
	return s.db.Close()
}
