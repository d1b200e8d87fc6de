// Package storage provides SQLite-based persistence for the edit journal:
// one row per completed drag gesture with its tool and outcome. Tile
// contents are never stored; grids live only in memory.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// Stroke is one completed gesture to be recorded.
type Stroke struct {
	SessionID string
	Tool      string
	Shape     string
	Touched   int // tiles the edit was offered to
	Changed   int // tiles that actually changed
}

// StrokeEntry is a recorded stroke.
type StrokeEntry struct {
	ID int64
	Stroke
	CreatedAt time.Time
}

// ToolSummary aggregates all strokes made with one tool.
type ToolSummary struct {
	Tool     string
	Strokes  int
	Touched  int
	Changed  int
	LastUsed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS strokes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			tool TEXT NOT NULL,
			shape TEXT NOT NULL,
			touched INTEGER NOT NULL DEFAULT 0,
			changed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_strokes_tool ON strokes(tool);
		CREATE INDEX IF NOT EXISTS idx_strokes_session ON strokes(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordStroke appends a stroke to the journal.
// Returns the ID of the inserted record.
func (s *Store) RecordStroke(st Stroke) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO strokes (session_id, tool, shape, touched, changed) VALUES (?, ?, ?, ?, ?)",
		st.SessionID, st.Tool, st.Shape, st.Touched, st.Changed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record stroke: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentStrokes retrieves the most recent strokes, newest first.
func (s *Store) RecentStrokes(limit int) ([]StrokeEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, tool, shape, touched, changed, created_at
		 FROM strokes
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query strokes: %w", err)
	}
	defer rows.Close()

	var entries []StrokeEntry
	for rows.Next() {
		var e StrokeEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Tool, &e.Shape, &e.Touched, &e.Changed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ToolSummaries aggregates the journal per tool, most used first.
func (s *Store) ToolSummaries() ([]ToolSummary, error) {
	rows, err := s.db.Query(
		`SELECT tool, COUNT(*), SUM(touched), SUM(changed), MAX(created_at)
		 FROM strokes
		 GROUP BY tool
		 ORDER BY COUNT(*) DESC, tool ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tool summaries: %w", err)
	}
	defer rows.Close()

	var out []ToolSummary
	for rows.Next() {
		var ts ToolSummary
		var lastUsed any
		if err := rows.Scan(&ts.Tool, &ts.Strokes, &ts.Touched, &ts.Changed, &lastUsed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ts.LastUsed = parseTime(lastUsed)
		out = append(out, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// SessionChanges returns the total number of tiles changed in a session.
// Returns 0 if the session has no strokes.
func (s *Store) SessionChanges(sessionID string) (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(
		"SELECT SUM(changed) FROM strokes WHERE session_id = ?",
		sessionID,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query session changes: %w", err)
	}

	if !total.Valid {
		return 0, nil
	}

	return int(total.Int64), nil
}

// Clear deletes the whole journal.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM strokes"); err != nil {
		return fmt.Errorf("storage: cannot clear strokes: %w", err)
	}
	return nil
}

// parseTime handles the driver returning DATETIME as either time.Time or
// text (aggregates come back as text).
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
