// Package audit keeps a SQLite log of page resolutions so operators can see
// which source served each collection and which sources failed.
package audit

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS resolutions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	page        TEXT NOT NULL,
	collection  TEXT NOT NULL,
	key         TEXT NOT NULL DEFAULT '',
	served_by   TEXT NOT NULL,
	attempts    TEXT NOT NULL DEFAULT '[]',
	resolved_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_resolutions_collection ON resolutions(collection, id);
`

// Attempt is one source tried during a resolution.
type Attempt struct {
	Source  string `json:"source"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

// Entry is one resolution of one collection.
type Entry struct {
	ID         int64     `json:"id"`
	Page       string    `json:"page"`
	Collection string    `json:"collection"`
	Key        string    `json:"key,omitempty"`
	ServedBy   string    `json:"servedBy"`
	Attempts   []Attempt `json:"attempts"`
	ResolvedAt time.Time `json:"resolvedAt"`
}

// Recorder is the write side of the log. Resolvers depend on it rather than
// on *Log so tests and one-shot commands can run without a database.
type Recorder interface {
	Record(e Entry) error
}

// Verify *Log satisfies Recorder at compile time.
var _ Recorder = (*Log)(nil)

// Log wraps a sql.DB holding the resolutions table.
type Log struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*Log, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("audit: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("audit: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("audit: apply schema: %w", err)
	}
	return &Log{conn: conn}, nil
}

// Close closes the underlying database connection.
func (l *Log) Close() error {
	return l.conn.Close()
}

// Record appends one entry. A zero ResolvedAt is stamped with the current time.
func (l *Log) Record(e Entry) error {
	if e.ResolvedAt.IsZero() {
		e.ResolvedAt = time.Now().UTC()
	}
	if e.Attempts == nil {
		e.Attempts = []Attempt{}
	}
	attemptsJSON, err := json.Marshal(e.Attempts)
	if err != nil {
		return fmt.Errorf("audit: marshal attempts: %w", err)
	}
	_, err = l.conn.Exec(`
		INSERT INTO resolutions (page, collection, key, served_by, attempts, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.Page, e.Collection, e.Key, e.ServedBy, string(attemptsJSON), e.ResolvedAt)
	if err != nil {
		return fmt.Errorf("audit: insert: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := l.conn.Query(`
		SELECT id, page, collection, key, served_by, attempts, resolved_at
		FROM resolutions ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: recent: %w", err)
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var (
			e            Entry
			attemptsJSON string
		)
		if err := rows.Scan(&e.ID, &e.Page, &e.Collection, &e.Key, &e.ServedBy, &attemptsJSON, &e.ResolvedAt); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(attemptsJSON), &e.Attempts)
		if e.Attempts == nil {
			e.Attempts = []Attempt{}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// LastServed returns, per collection, the source of its most recent resolution.
func (l *Log) LastServed() (map[string]string, error) {
	rows, err := l.conn.Query(`
		SELECT r.collection, r.served_by FROM resolutions r
		JOIN (SELECT collection, MAX(id) AS id FROM resolutions GROUP BY collection) last
		ON r.id = last.id
	`)
	if err != nil {
		return nil, fmt.Errorf("audit: last served: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var collection, servedBy string
		if err := rows.Scan(&collection, &servedBy); err != nil {
			return nil, err
		}
		out[collection] = servedBy
	}
	return out, rows.Err()
}
