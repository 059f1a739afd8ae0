// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package casestore snapshots the client roster to a local SQLite
// database so it survives between CLI invocations. Ids are assigned by
// the roster; the store only persists what it is given.
package casestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/parole-review/pkg/types"
)

const selectedKey = "selected_client"

// Store manages the case database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.Path and creates the schema
// if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id INTEGER PRIMARY KEY,
			filename TEXT NOT NULL,
			file_size INTEGER NOT NULL DEFAULT 0,
			extracted_text_length INTEGER NOT NULL DEFAULT 0,
			markdown_summary TEXT NOT NULL DEFAULT '',
			summary_type TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			cdcr_number TEXT NOT NULL DEFAULT '',
			demographics TEXT NOT NULL,
			saved_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_clients_cdcr ON clients(cdcr_number)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting clients: %w", err)
	}
	return n, nil
}

// Load returns every record, newest (highest id) first.
func (s *Store) Load(ctx context.Context) ([]types.ClientRecord, error) {
	return s.query(ctx, `SELECT id, filename, file_size, extracted_text_length,
		markdown_summary, summary_type, demographics
		FROM clients ORDER BY id DESC`)
}

// FindText returns the records whose markdown summary contains text,
// ignoring ASCII case, newest first.
func (s *Store) FindText(ctx context.Context, text string) ([]types.ClientRecord, error) {
	return s.query(ctx, `SELECT id, filename, file_size, extracted_text_length,
		markdown_summary, summary_type, demographics
		FROM clients WHERE instr(lower(markdown_summary), lower(?)) > 0
		ORDER BY id DESC`, text)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]types.ClientRecord, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer rows.Close()

	var records []types.ClientRecord
	for rows.Next() {
		var (
			r    types.ClientRecord
			demo string
		)
		if err := rows.Scan(&r.ID, &r.Filename, &r.FileSize, &r.ExtractedTextLength,
			&r.MarkdownSummary, &r.SummaryType, &demo); err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		if err := json.Unmarshal([]byte(demo), &r.Demographics); err != nil {
			return nil, fmt.Errorf("decoding demographics of client %d: %w", r.ID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Save inserts r or replaces the stored record with the same id.
func (s *Store) Save(ctx context.Context, r types.ClientRecord) error {
	return s.save(ctx, s.db, r)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) save(ctx context.Context, db execer, r types.ClientRecord) error {
	demo, err := json.Marshal(r.Demographics)
	if err != nil {
		return fmt.Errorf("encoding demographics: %w", err)
	}
	ci := r.Demographics.ClientInfo
	_, err = db.ExecContext(ctx,
		`INSERT INTO clients (id, filename, file_size, extracted_text_length,
			markdown_summary, summary_type, name, cdcr_number, demographics, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			filename=excluded.filename, file_size=excluded.file_size,
			extracted_text_length=excluded.extracted_text_length,
			markdown_summary=excluded.markdown_summary, summary_type=excluded.summary_type,
			name=excluded.name, cdcr_number=excluded.cdcr_number,
			demographics=excluded.demographics, saved_at=excluded.saved_at`,
		r.ID, r.Filename, r.FileSize, r.ExtractedTextLength,
		r.MarkdownSummary, r.SummaryType, ci.Name, ci.CDCRNumber,
		string(demo), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving client %d: %w", r.ID, err)
	}
	return nil
}

// Seed stores records when the store is empty and reports how many were
// inserted. A non-empty store is left alone.
func (s *Store) Seed(ctx context.Context, records []types.ClientRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting clients: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	for _, r := range records {
		if err := s.save(ctx, tx, r); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing seed: %w", err)
	}
	return len(records), nil
}

// SelectedID returns the persisted selection, if any.
func (s *Store) SelectedID(ctx context.Context) (int, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, selectedKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading selection: %w", err)
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("parsing selection %q: %w", v, err)
	}
	return id, true, nil
}

// SetSelectedID persists the selection.
func (s *Store) SetSelectedID(ctx context.Context, id int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		selectedKey, strconv.Itoa(id),
	)
	if err != nil {
		return fmt.Errorf("saving selection: %w", err)
	}
	return nil
}
