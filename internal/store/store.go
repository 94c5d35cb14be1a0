// Package store persists schedule run summaries to a local SQLite database,
// giving `truss history` a durable record of past computations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on open. Using IF NOT EXISTS makes it
// safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS schedule_runs (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    plan_name        TEXT NOT NULL,
    activity_count   INTEGER NOT NULL,
    project_duration INTEGER NOT NULL,
    critical_path    TEXT NOT NULL,
    created_at       TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store is a SQLite-backed run history in WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at dbPath, enables WAL mode
// and a busy timeout, and creates the schema if it does not exist.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// SQLite supports a single writer; one connection avoids SQLITE_BUSY
	// contention between pooled connections that each need PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Run is one saved schedule computation: the derived summary fields, not
// the full activity set.
type Run struct {
	ID              int64     `json:"id"`
	PlanName        string    `json:"plan_name"`
	ActivityCount   int       `json:"activity_count"`
	ProjectDuration int       `json:"project_duration"`
	CriticalPath    []int     `json:"critical_path"`
	CreatedAt       time.Time `json:"created_at"`
}

// SaveRun records a schedule computation and returns the new run ID. The
// critical path is stored as a JSON-serialized ID list.
func (s *Store) SaveRun(ctx context.Context, planName string, activityCount, projectDuration int, criticalPath []int) (int64, error) {
	if criticalPath == nil {
		criticalPath = []int{}
	}
	pathJSON, err := json.Marshal(criticalPath)
	if err != nil {
		return 0, fmt.Errorf("store: marshal critical path: %w", err)
	}

	const q = `INSERT INTO schedule_runs (plan_name, activity_count, project_duration, critical_path)
		VALUES (?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, planName, activityCount, projectDuration, string(pathJSON))
	if err != nil {
		return 0, fmt.Errorf("store: save run for %q: %w", planName, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: run id: %w", err)
	}
	return id, nil
}

// Runs returns all saved runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	const q = `SELECT id, plan_name, activity_count, project_duration, critical_path, created_at
		FROM schedule_runs ORDER BY id DESC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var result []Run
	for rows.Next() {
		var r Run
		var pathJSON, ts string
		if err := rows.Scan(&r.ID, &r.PlanName, &r.ActivityCount, &r.ProjectDuration, &pathJSON, &ts); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(pathJSON), &r.CriticalPath); err != nil {
			return nil, fmt.Errorf("store: parse critical path for run %d: %w", r.ID, err)
		}
		createdAt, err := parseTimestamp(ts)
		if err != nil {
			return nil, fmt.Errorf("store: parse run timestamp: %w", err)
		}
		r.CreatedAt = createdAt
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate runs: %w", err)
	}
	return result, nil
}

// timestampFormats lists the formats SQLite drivers may produce for
// CURRENT_TIMESTAMP. modernc.org/sqlite typically returns RFC 3339, while
// canonical SQLite returns the space-separated DateTime format.
var timestampFormats = []string{
	time.RFC3339,
	time.DateTime,
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", s)
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
