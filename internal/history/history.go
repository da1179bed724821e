// Package history keeps a local record of finished download attempts.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	url         TEXT NOT NULL,
	success     INTEGER NOT NULL,
	files       INTEGER NOT NULL,
	started_at  INTEGER NOT NULL,
	finished_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS attempts_finished_at ON attempts(finished_at);
`

// Entry is one recorded attempt.
type Entry struct {
	ID         string
	Name       string
	URL        string
	Success    bool
	Files      int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Store wraps the attempts database. All writes are best-effort from the
// caller's point of view; the UI never blocks on it.
type Store struct {
	db *sql.DB
}

// Open creates the database (and its parent directory) if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record inserts one finished attempt.
func (s *Store) Record(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO attempts (id, name, url, success, files, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.URL, boolToInt(e.Success), e.Files,
		e.StartedAt.Unix(), e.FinishedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("recording attempt: %w", err)
	}
	return nil
}

// Recent returns up to limit attempts, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, url, success, files, started_at, finished_at
		 FROM attempts ORDER BY finished_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing attempts: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var success int
		var started, finished int64
		if err := rows.Scan(&e.ID, &e.Name, &e.URL, &success, &e.Files, &started, &finished); err != nil {
			return nil, fmt.Errorf("scanning attempt row: %w", err)
		}
		e.Success = success != 0
		e.StartedAt = time.Unix(started, 0)
		e.FinishedAt = time.Unix(finished, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
