package storage

import (
	"context"
	"errors"

	"outliner/internal/history"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists generation sessions and their edit history.
type Store interface {
	SessionStore
	Close() error
}

// SessionStore defines operations for sessions and history snapshots.
type SessionStore interface {
	// CreateSession inserts a session together with its initial history.
	CreateSession(ctx context.Context, s *Session, h *history.History) error

	// SaveHistory replaces the stored snapshots and cursor of a session.
	SaveHistory(ctx context.Context, sessionID string, h *history.History) error

	// LoadSession retrieves a session and rebuilds its history.
	LoadSession(ctx context.Context, sessionID string) (*Session, *history.History, error)

	// ListSessions returns every session, newest first.
	ListSessions(ctx context.Context) ([]Session, error)
}
