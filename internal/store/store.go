// Package store handles SQLite persistence of reading history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/spr/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for reading sessions.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reading_sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			source TEXT NOT NULL,
			wpm INTEGER NOT NULL,
			total_words INTEGER NOT NULL,
			words_shown INTEGER NOT NULL,
			finished INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_reading_sessions_started_at ON reading_sessions(started_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a reading session and returns its id.
func (s *Store) InsertSession(ctx context.Context, session model.ReadingSession) (int64, error) {
	finished := 0
	if session.Finished {
		finished = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reading_sessions (started_at, ended_at, source, wpm, total_words, words_shown, finished, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.StartedAt.Format(time.RFC3339Nano),
		session.EndedAt.Format(time.RFC3339Nano),
		session.Source,
		session.WPM,
		session.TotalWords,
		session.WordsShown,
		finished,
		session.EndedAt.Sub(session.StartedAt).Milliseconds(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSessions returns sessions oldest first, filtered by cfg. Last keeps only
// the most recent N sessions.
func (s *Store) ListSessions(ctx context.Context, cfg model.HistoryConfig) ([]model.SessionAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "started_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, started_at, source, wpm, total_words, words_shown, finished, duration_ms
		FROM reading_sessions
		WHERE %s
		ORDER BY started_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionAggregate
	for rows.Next() {
		var agg model.SessionAggregate
		var startedAt string
		var finished int
		if err := rows.Scan(&agg.SessionID, &startedAt, &agg.Source, &agg.WPM, &agg.TotalWords, &agg.WordsShown, &finished, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		agg.StartedAt = parsed
		agg.Finished = finished != 0
		sessions = append(sessions, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	return sessions, nil
}
