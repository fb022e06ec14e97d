// Package history stores past analyses in a SQLite database.
//
// Each row keeps the summary columns needed for listing plus the full report
// as JSON, so older entries can be rendered again in any format.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/maxgfr/benford-law/internal/report"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("analysis not found")

// Store is a SQLite-backed analysis history.
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one stored analysis.
type Entry struct {
	ID         int64
	CreatedAt  time.Time
	Source     string
	SampleSize int
	Threshold  float64
	Conformant bool

	// Result is only populated by Get.
	Result *report.Result
}

// Open opens or creates the database at path, creating parent directories
// as needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}

	// One writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		source TEXT NOT NULL,
		sample_size INTEGER NOT NULL,
		threshold REAL NOT NULL,
		conformant INTEGER NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
	CREATE INDEX IF NOT EXISTS idx_analyses_source ON analyses(source);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Save stores result and returns its id.
func (s *Store) Save(ctx context.Context, result *report.Result) (int64, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO analyses (created_at, source, sample_size, threshold, conformant, report_json)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		time.Now().UTC().Format(time.RFC3339Nano),
		result.Source,
		result.Report.SampleSize,
		result.Report.Threshold,
		result.Report.IsFollowingBenfordLaw,
		string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save analysis: %w", err)
	}

	return res.LastInsertId()
}

// List returns up to limit entries, newest first. A limit of zero or less
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
	SELECT id, created_at, source, sample_size, threshold, conformant
	FROM analyses
	ORDER BY id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			createdAt string
		)
		if err := rows.Scan(&e.ID, &createdAt, &e.Source, &e.SampleSize, &e.Threshold, &e.Conformant); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns the entry with id, including its full result.
func (s *Store) Get(ctx context.Context, id int64) (*Entry, error) {
	query := `
	SELECT id, created_at, source, sample_size, threshold, conformant, report_json
	FROM analyses
	WHERE id = ?
	`

	var (
		e         Entry
		createdAt string
		data      string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &createdAt, &e.Source, &e.SampleSize, &e.Threshold, &e.Conformant, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var result report.Result
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to parse stored report: %w", err)
	}
	e.CreatedAt = parseTimestamp(createdAt)
	e.Result = &result
	return &e, nil
}

// parseTimestamp returns the zero time for anything that is not RFC 3339.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
