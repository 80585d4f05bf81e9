package store

import (
	"context"
	"sync"

	"github.com/jmallari/gofer/internal/orchestrator/models"
)

// Memory is an in-process Store for tests and ephemeral runs.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string][]models.Message
	order    []string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string][]models.Message),
	}
}

// Append implements Store.
func (m *Memory) Append(ctx context.Context, sessionID string, msgs []models.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, id := range m.order {
		if id == sessionID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.order = append([]string{sessionID}, m.order...)
	m.sessions[sessionID] = append(m.sessions[sessionID], msgs...)
	return nil
}

// ListSessions implements Store.
func (m *Memory) ListSessions(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out, nil
}

// Read implements Store.
func (m *Memory) Read(ctx context.Context, sessionID string) ([]models.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msgs := m.sessions[sessionID]
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
