// Package session provides the UIA session store backends.
package session

import (
	"context"
	"sync"

	"uiagate/internal/domain/service"
)

// MemoryStore keeps UIA sessions in process memory. Entries are never evicted;
// it suits single-instance deployments and tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
}

type memorySession struct {
	id string

	mu        sync.RWMutex
	data      map[string]string
	completed map[string]struct{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memorySession)}
}

// Connect returns the session for sessionID, creating it on first use.
func (s *MemoryStore) Connect(_ context.Context, sessionID string) (service.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &memorySession{
			id:        sessionID,
			data:      make(map[string]string),
			completed: make(map[string]struct{}),
		}
		s.sessions[sessionID] = sess
	}

	return sess, nil
}

// Len reports how many sessions are held.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (m *memorySession) ID() string {
	return m.id
}

func (m *memorySession) GetData(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]

	return value, ok, nil
}

func (m *memorySession) SetData(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value

	return nil
}

func (m *memorySession) SetDataIfAbsent(_ context.Context, key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = value

	return true, nil
}

func (m *memorySession) DeleteData(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)

	return nil
}

func (m *memorySession) CompletedStages(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stages := make([]string, 0, len(m.completed))
	for stage := range m.completed {
		stages = append(stages, stage)
	}

	return stages, nil
}

func (m *memorySession) MarkCompleted(_ context.Context, stage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.completed[stage] = struct{}{}

	return nil
}
