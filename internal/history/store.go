// Package history persists finished session results in a local SQLite
// database and serves them back for review and aggregate statistics.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"quizcli/internal/session"
)

// maxSessions bounds the retained history; the oldest sessions are
// evicted first.
const maxSessions = 50

// Store is a SQLite-backed session history. It implements
// session.ResultSink.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}
	store := &Store{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	query := `CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		finished_at DATETIME NOT NULL,
		total_questions INTEGER NOT NULL,
		correct_count INTEGER NOT NULL,
		percentage INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		timed_out INTEGER NOT NULL DEFAULT 0,
		answers TEXT NOT NULL
	)`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

// SaveResult appends a session result and evicts the oldest entries
// beyond the retention cap.
func (s *Store) SaveResult(ctx context.Context, result *session.Result) error {
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, finished_at, total_questions, correct_count, percentage, duration_ms, timed_out, answers)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID, result.FinishedAt.UTC(), result.TotalQuestions, result.CorrectCount,
		result.Percentage, result.DurationMs, result.TimedOut, string(answers),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE rowid NOT IN (
			SELECT rowid FROM sessions ORDER BY rowid DESC LIMIT ?
		)`, maxSessions)
	if err != nil {
		return fmt.Errorf("trim sessions: %w", err)
	}
	return nil
}

// LoadResults returns all retained results in insertion order.
func (s *Store) LoadResults(ctx context.Context) ([]session.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, finished_at, total_questions, correct_count, percentage, duration_ms, timed_out, answers
		 FROM sessions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var results []session.Result
	for rows.Next() {
		var result session.Result
		var finishedAt time.Time
		var answers string
		if err := rows.Scan(&result.ID, &finishedAt, &result.TotalQuestions, &result.CorrectCount,
			&result.Percentage, &result.DurationMs, &result.TimedOut, &answers); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		result.FinishedAt = finishedAt.UTC()
		if err := json.Unmarshal([]byte(answers), &result.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return results, nil
}
