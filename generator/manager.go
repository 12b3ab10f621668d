package generator

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager maps browser session ids to generation Sessions and expires idle
// ones. State is per-browser and in-memory only.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*managedSession
	ttl      time.Duration
}

type managedSession struct {
	sess     *Session
	lastSeen time.Time
}

// NewManager creates a Manager whose sessions expire after ttl of inactivity.
func NewManager(ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*managedSession),
		ttl:      ttl,
	}
	go m.sweep()
	return m
}

// GetOrCreate returns the session for id, creating a fresh one (with a new
// id) when id is empty or expired. The returned id must be stored back in
// the browser session cookie.
func (m *Manager) GetOrCreate(id string) (string, *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != "" {
		if entry, ok := m.sessions[id]; ok {
			entry.lastSeen = time.Now()
			return id, entry.sess
		}
	}

	id = uuid.NewString()
	sess := NewSession()
	m.sessions[id] = &managedSession{sess: sess, lastSeen: time.Now()}
	return id, sess
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(m.ttl)
	for range ticker.C {
		cutoff := time.Now().Add(-m.ttl)
		m.mu.Lock()
		for id, entry := range m.sessions {
			if entry.lastSeen.Before(cutoff) {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
