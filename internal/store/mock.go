package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jwebster45206/detective-quest/pkg/casefile"
)

// MockStore is an in-memory CaseStore for testing
type MockStore struct {
	mu        sync.RWMutex
	cases     map[string]*casefile.Case
	pingError error
}

// Ensure MockStore implements CaseStore interface
var _ CaseStore = (*MockStore)(nil)

// NewMockStore creates a new mock case store
func NewMockStore() *MockStore {
	return &MockStore{
		cases: make(map[string]*casefile.Case),
	}
}

// AddCase registers a case under the given name
func (m *MockStore) AddCase(name string, c *casefile.Case) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cases[name] = c
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStore) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStore) Close() error {
	return nil
}

func (m *MockStore) ListCases(ctx context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cases := make(map[string]string, len(m.cases))
	for name, c := range m.cases {
		cases[name] = c.Title
	}
	return cases, nil
}

func (m *MockStore) GetCase(ctx context.Context, name string) (*casefile.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cases[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCaseNotFound, name)
	}
	return c, nil
}
