package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the pair in process memory. It is used by tests and by
// the "memory" backend, where a session lasts as long as the process.
type MemoryStore struct {
	mu   sync.RWMutex
	cred *Credential
}

var _ ClosableStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context) (*Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.cred == nil {
		return nil, nil
	}
	c := *m.cred
	return &c, nil
}

func (m *MemoryStore) Set(_ context.Context, c Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c.Access == "" {
		m.cred = nil
		return nil
	}
	m.cred = &c
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cred = nil
	return nil
}

func (m *MemoryStore) Close() error { return nil }
