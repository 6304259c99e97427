// Package transcript persists a per-session log of traffic crossing the
// bridge, the way MUD clients keep session logs. Recording is optional:
// a nil Store is a valid no-op recorder.
package transcript

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Direction marks which way a line crossed the socket.
type Direction string

const (
	DirectionSend    Direction = "send"
	DirectionReceive Direction = "recv"
)

// Entry is one recorded line.
type Entry struct {
	Session   string
	Direction Direction
	Line      string
	At        time.Time
}

// Store persists transcript entries in SQLite.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS transcript (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    session   TEXT NOT NULL,
    direction TEXT NOT NULL,
    line      TEXT NOT NULL,
    at        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS transcript_session ON transcript (session, id);
`

// Open opens (or creates) a transcript database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("transcript path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open transcript db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping transcript db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create transcript schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle. Safe on a nil store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append records one entry. A nil or unconfigured store is a no-op, so
// callers record unconditionally.
func (s *Store) Append(ctx context.Context, e Entry) error {
	if s == nil || s.db == nil {
		return nil
	}
	if e.Session == "" {
		return fmt.Errorf("transcript session is required")
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transcript (session, direction, line, at) VALUES (?, ?, ?, ?)`,
		e.Session, string(e.Direction), e.Line, e.At.UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("append transcript entry: %w", err)
	}
	return nil
}

// Session lists every recorded entry for the given session guid, oldest
// first.
func (s *Store) Session(ctx context.Context, guid string) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session, direction, line, at FROM transcript WHERE session = ? ORDER BY id`,
		guid)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var dir string
		var at int64
		if err := rows.Scan(&e.Session, &dir, &e.Line, &at); err != nil {
			return nil, fmt.Errorf("scan transcript entry: %w", err)
		}
		e.Direction = Direction(dir)
		e.At = time.UnixMilli(at).UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcript: %w", err)
	}
	return out, nil
}
