package state

import (
	"slices"
	"strings"
	"sync"
)

// Mock is a test double for Manager.
type Mock struct {
	mu      sync.Mutex
	prefs   *Prefs
	recent  []string
	saved   []Prefs
	closed  bool
	loadErr error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetPrefs() (*Prefs, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.prefs, nil
}

func (m *Mock) SavePrefs(p Prefs) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = &p
	m.saved = append(m.saved, p)
}

func (m *Mock) RecordQuery(query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	m.recent = slices.DeleteFunc(m.recent, func(q string) bool { return q == query })
	m.recent = append([]string{query}, m.recent...)
	if len(m.recent) > MaxRecentQueries {
		m.recent = m.recent[:MaxRecentQueries]
	}
	return nil
}

func (m *Mock) RecentQueries(limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.recent) {
		limit = len(m.recent)
	}
	return slices.Clone(m.recent[:limit]), nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPrefs(p *Prefs) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = p
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) Saved() []Prefs {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.saved)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
