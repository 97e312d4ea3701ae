// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/lekatlabs/lekat-tui/internal/model"
)

// ErrNotFound indicates no cached row exists for the session.
var ErrNotFound = errors.New("storage: not found")

// schema creates the cache tables.
const schema = `
CREATE TABLE IF NOT EXISTS transcripts (
	session_id TEXT PRIMARY KEY,
	messages   TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS reports (
	session_id  TEXT PRIMARY KEY,
	report      TEXT NOT NULL,
	analyzed_at TEXT,
	stored_at   TEXT NOT NULL
);
`

// pragmas tune sqlite for a small single-user cache.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

// =============================================================================
// CACHE
// =============================================================================

// Cache is the sqlite-backed local cache.
type Cache struct {
	db *sql.DB
}

// Open opens (and creates if needed) the cache database in dir.
func Open(dir string) (*Cache, error) {
	return OpenPath(filepath.Join(dir, "lekat.db"))
}

// OpenPath opens a cache database at an explicit path.
func OpenPath(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// =============================================================================
// TRANSCRIPTS
// =============================================================================

// SaveTranscript stores the latest fetched history for a session.
func (c *Cache) SaveTranscript(sessionID string, msgs []*model.Message) error {
	data, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("storage: marshal transcript: %w", err)
	}
	_, err = c.db.Exec(`
		INSERT INTO transcripts (session_id, messages, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			messages = excluded.messages,
			fetched_at = excluded.fetched_at`,
		sessionID, string(data), time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storage: save transcript: %w", err)
	}
	return nil
}

// LoadTranscript returns the last stored history for a session.
func (c *Cache) LoadTranscript(sessionID string) ([]*model.Message, error) {
	var data string
	err := c.db.QueryRow(
		"SELECT messages FROM transcripts WHERE session_id = ?",
		sessionID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: load transcript: %w", err)
	}

	var msgs []*model.Message
	if err := json.Unmarshal([]byte(data), &msgs); err != nil {
		return nil, fmt.Errorf("storage: decode transcript: %w", err)
	}
	return msgs, nil
}

// =============================================================================
// REPORTS
// =============================================================================

// SaveReport stores the last successful analysis for a session.
func (c *Cache) SaveReport(sessionID string, report *model.AnalysisReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("storage: marshal report: %w", err)
	}
	_, err = c.db.Exec(`
		INSERT INTO reports (session_id, report, analyzed_at, stored_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			report = excluded.report,
			analyzed_at = excluded.analyzed_at,
			stored_at = excluded.stored_at`,
		sessionID, string(data), report.AnalyzedAt, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storage: save report: %w", err)
	}
	return nil
}

// LoadReport returns the last stored report for a session, marked
// cached so the renderer shows the stored-result banner.
func (c *Cache) LoadReport(sessionID string) (*model.AnalysisReport, error) {
	var data string
	err := c.db.QueryRow(
		"SELECT report FROM reports WHERE session_id = ?",
		sessionID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: load report: %w", err)
	}

	var report model.AnalysisReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("storage: decode report: %w", err)
	}
	report.Cached = true
	return &report, nil
}
