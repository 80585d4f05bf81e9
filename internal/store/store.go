// Package store persists conversation history. Sessions are append-only logs
// of messages keyed by an opaque session id; nothing here ever rewrites or
// deletes history.
package store

import (
	"context"

	"github.com/jmallari/gofer/internal/orchestrator/models"
)

// Store is the session state contract the orchestrator depends on.
//
// Append must be atomic: either the whole batch becomes durable or none of
// it. Callers never retry a successful append, which keeps the log free of
// duplicates.
type Store interface {
	// Append adds messages to the session's history, creating the session
	// on first use.
	Append(ctx context.Context, sessionID string, msgs []models.Message) error

	// ListSessions returns the distinct session ids ever appended to,
	// most recently updated first.
	ListSessions(ctx context.Context) ([]string, error)

	// Read returns the full ordered history for a session, or an empty
	// slice if the session is unknown.
	Read(ctx context.Context, sessionID string) ([]models.Message, error)
}
