// Package runindex keeps a durable index of generated page sets so the
// web layer can list past renders and resolve a run back to its files.
package runindex

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Schema creates the run index table.
const Schema = `
CREATE TABLE IF NOT EXISTS generated_runs (
	run_id       TEXT PRIMARY KEY,
	file_id      TEXT NOT NULL,
	nav_path     TEXT NOT NULL,
	section_keys TEXT NOT NULL DEFAULT '',
	created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_generated_runs_created ON generated_runs(created_at);
`

// Run is one recorded page set.
type Run struct {
	RunID       string    `json:"run_id"`
	FileID      string    `json:"file_id"`
	NavPath     string    `json:"nav_path"`
	SectionKeys []string  `json:"section_keys"`
	CreatedAt   time.Time `json:"created_at"`
}

// Index records generated page sets in SQLite.
type Index struct {
	db *sql.DB
}

// New creates an Index over db.
func New(db *sql.DB) *Index { return &Index{db: db} }

// Init creates the schema.
func (ix *Index) Init(ctx context.Context) error {
	if _, err := ix.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("runindex: init: %w", err)
	}
	return nil
}

// Record stores one rendered run. Re-recording the same run id
// overwrites the previous row.
func (ix *Index) Record(ctx context.Context, runID, fileID, navPath string, sectionKeys []string) error {
	_, err := ix.db.ExecContext(ctx, `
		INSERT INTO generated_runs (run_id, file_id, nav_path, section_keys, created_at)
		VALUES (?,?,?,?,?)
		ON CONFLICT(run_id) DO UPDATE SET
			file_id = excluded.file_id,
			nav_path = excluded.nav_path,
			section_keys = excluded.section_keys,
			created_at = excluded.created_at`,
		runID, fileID, navPath, strings.Join(sectionKeys, ","), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("runindex: record %s: %w", runID, err)
	}
	return nil
}

// Get returns one run by id.
func (ix *Index) Get(ctx context.Context, runID string) (*Run, error) {
	row := ix.db.QueryRowContext(ctx, `
		SELECT run_id, file_id, nav_path, section_keys, created_at
		FROM generated_runs WHERE run_id = ?`, runID)
	return scanRun(row)
}

// List returns the most recent runs, newest first.
func (ix *Index) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := ix.db.QueryContext(ctx, `
		SELECT run_id, file_id, nav_path, section_keys, created_at
		FROM generated_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("runindex: list: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var r Run
	var keys string
	var createdAt int64
	if err := s.Scan(&r.RunID, &r.FileID, &r.NavPath, &keys, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("runindex: not found")
		}
		return nil, fmt.Errorf("runindex: scan: %w", err)
	}
	if keys != "" {
		r.SectionKeys = strings.Split(keys, ",")
	}
	r.CreatedAt = time.Unix(createdAt, 0)
	return &r, nil
}
