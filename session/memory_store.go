package session

import (
	"context"
	"sync"
)

// MemoryTokenStore is a non-durable TokenStore for tests and for callers
// that opt out of persistence.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

// NewMemoryTokenStore describes the newmemorytokenstore operation and its observable behavior.
//
// NewMemoryTokenStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Load describes the load operation and its observable behavior.
func (m *MemoryTokenStore) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", nil
	}
	return m.token, nil
}

// Save describes the save operation and its observable behavior.
func (m *MemoryTokenStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

// Clear describes the clear operation and its observable behavior.
func (m *MemoryTokenStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
