package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the default process-local session store. Records are
// partitioned by token, so requests for different sessions never
// contend on anything but the map lock.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewMemoryStore creates an in-memory session store and starts a
// janitor that drops expired records.
func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{sessions: make(map[string]Session)}
	go m.janitor()
	return m
}

func (m *MemoryStore) Create(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, sessionID)
		return nil, ErrNotFound
	}

	out := s
	return &out, nil
}

// Update overwrites the stored record. Concurrent updates for the same
// session are last-writer-wins.
func (m *MemoryStore) Update(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.ID]; !ok {
		return ErrNotFound
	}
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *MemoryStore) janitor() {
	for {
		time.Sleep(10 * time.Minute)
		now := time.Now()
		m.mu.Lock()
		for id, s := range m.sessions {
			if now.After(s.ExpiresAt) {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
