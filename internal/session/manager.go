package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager maps browser sessions to workspaces. The session cookie only
// carries the workspace id; the mutable state stays server side.
type Manager struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace
}

func NewManager() *Manager {
	return &Manager{workspaces: make(map[string]*Workspace)}
}

// Workspace returns the workspace for id, creating one when id is
// unknown or blank. The id actually used is returned so callers can
// store it back into the session.
func (m *Manager) Workspace(id string) (*Workspace, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if ws, ok := m.workspaces[id]; ok {
			return ws, id
		}
	}
	id = uuid.NewString()
	ws := newWorkspace()
	m.workspaces[id] = ws
	return ws, id
}

// Prune drops workspaces idle longer than maxAge and reports how many
// were removed.
func (m *Manager) Prune(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, ws := range m.workspaces {
		ws.mu.Lock()
		idle := ws.lastSeen.Before(cutoff) && !ws.uploading
		ws.mu.Unlock()
		if idle {
			delete(m.workspaces, id)
			removed++
		}
	}
	return removed
}

// PruneLoop prunes idle workspaces on an interval until ctx is done.
func (m *Manager) PruneLoop(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Prune(maxAge)
		}
	}
}
