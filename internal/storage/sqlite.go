package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"outliner/internal/generation"
	"outliner/internal/history"
	"outliner/internal/log"
	"outliner/internal/outline"

	_ "github.com/mattn/go-sqlite3"
)

// Session is one generation result and the request that produced it.
type Session struct {
	ID         string
	Request    generation.Request
	Title      string
	RawContent string
	Fallback   bool
	Cursor     int
	Entries    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// timeLayout has a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			topic TEXT,
			output_type TEXT,
			audience TEXT,
			tone TEXT,
			title TEXT,
			raw_content TEXT,
			fallback INTEGER,
			cursor INTEGER,
			created_at TEXT,
			updated_at TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			session_id TEXT REFERENCES sessions(id) ON DELETE CASCADE,
			idx INTEGER,
			outline JSON,
			PRIMARY KEY (session_id, idx)
		);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// CreateSession assigns a new id when s.ID is empty.
func (s *SQLiteStore) CreateSession(ctx context.Context, sess *Session, h *history.History) error {
	if h == nil {
		return history.ErrEmpty
	}
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	sess.CreatedAt, sess.UpdatedAt = now, now
	sess.Title = h.Current().Title

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	r := sess.Request
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (id, topic, output_type, audience, tone, title, raw_content, fallback, cursor, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sess.ID, r.Topic, r.OutputType, r.Audience, r.Tone, sess.Title, sess.RawContent, sess.Fallback, h.Cursor(),
		now.Format(timeLayout), now.Format(timeLayout)); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	if err := writeSnapshots(ctx, tx, sess.ID, h); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	sess.Cursor, sess.Entries = h.Cursor(), h.Len()
	log.Get().Debug("session created", zap.String("id", sess.ID), zap.Int("entries", h.Len()))
	return nil
}

// SaveHistory syncs the stored snapshots with h: entries beyond h's length
// are removed so a truncated history never resurrects discarded states.
func (s *SQLiteStore) SaveHistory(ctx context.Context, sessionID string, h *history.History) error {
	if h == nil {
		return history.ErrEmpty
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `UPDATE sessions SET cursor = ?, title = ?, updated_at = ? WHERE id = ?`,
		h.Cursor(), h.Current().Title, time.Now().UTC().Format(timeLayout), sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	if err := writeSnapshots(ctx, tx, sessionID, h); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Get().Debug("history saved", zap.String("id", sessionID), zap.Int("cursor", h.Cursor()), zap.Int("entries", h.Len()))
	return nil
}

func writeSnapshots(ctx context.Context, tx *sql.Tx, sessionID string, h *history.History) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshots (session_id, idx, outline) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, o := range h.Entries() {
		b, err := outline.Encode(o)
		if err != nil {
			return fmt.Errorf("snapshot %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, sessionID, i, string(b)); err != nil {
			return fmt.Errorf("failed to insert snapshot %d: %w", i, err)
		}
	}
	return nil
}

func (s *SQLiteStore) LoadSession(ctx context.Context, sessionID string) (*Session, *history.History, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, topic, output_type, audience, tone, title, raw_content, fallback, cursor, created_at, updated_at
		FROM sessions WHERE id = ?`, sessionID)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan session: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT outline FROM snapshots WHERE session_id = ? ORDER BY idx`, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var entries []outline.Outline
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		o, err := outline.Decode([]byte(raw))
		if err != nil {
			return nil, nil, fmt.Errorf("snapshot %d: %w", len(entries), err)
		}
		entries = append(entries, o)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	h, err := history.Restore(entries, sess.Cursor)
	if err != nil {
		return nil, nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	sess.Entries = h.Len()
	return sess, h, nil
}

func (s *SQLiteStore) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, topic, output_type, audience, tone, title, raw_content, fallback, cursor, created_at, updated_at
		FROM sessions ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sess)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var sess Session
	var created, updated string
	r := &sess.Request
	if err := row.Scan(&sess.ID, &r.Topic, &r.OutputType, &r.Audience, &r.Tone, &sess.Title, &sess.RawContent,
		&sess.Fallback, &sess.Cursor, &created, &updated); err != nil {
		return nil, err
	}
	sess.CreatedAt, _ = time.Parse(timeLayout, created)
	sess.UpdatedAt, _ = time.Parse(timeLayout, updated)
	return &sess, nil
}
