package storage

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/state"
)

// MockStorage is an in-memory Storage for tests
type MockStorage struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*state.Session
	pingError error
	saveError error
	corrupt   map[uuid.UUID]bool
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		sessions: make(map[uuid.UUID]*state.Session),
		corrupt:  make(map[uuid.UUID]bool),
	}
}

// SetPingSuccess configures the mock to succeed on ping
func (m *MockStorage) SetPingSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = nil
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail on save with the given error
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// SetCorruptSession makes id list as stored but fail to load with
// ErrCorruptSession, until it is saved again
func (m *MockStorage) SetCorruptSession(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.corrupt[id] = true
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveSession stores a copy of s
func (m *MockStorage) SaveSession(ctx context.Context, s *state.Session) error {
	if s == nil {
		return errors.New("session cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.sessions[s.ID] = copySession(s)
	delete(m.corrupt, s.ID)
	return nil
}

// LoadSession returns a copy of the stored session, or nil when missing
func (m *MockStorage) LoadSession(ctx context.Context, id uuid.UUID) (*state.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.corrupt[id] {
		return nil, ErrCorruptSession
	}
	s, exists := m.sessions[id]
	if !exists {
		return nil, nil
	}
	return copySession(s), nil
}

// DeleteSession mocks deleting a session
func (m *MockStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	delete(m.corrupt, id)
	return nil
}

// ListSessions returns every stored id
func (m *MockStorage) ListSessions(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(m.sessions)+len(m.corrupt))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	for id := range m.corrupt {
		if _, ok := m.sessions[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func copySession(s *state.Session) *state.Session {
	c := *s
	c.Player = slices.Clone(s.Player)
	if s.Encounter != nil {
		enc := *s.Encounter
		enc.LootTable = slices.Clone(s.Encounter.LootTable)
		c.Encounter = &enc
	}
	return &c
}
