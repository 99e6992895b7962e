package provider

import (
	"context"
	"sync"

	"github.com/llehouerou/gesture/internal/photo"
)

// Call records one Fetch invocation on a Mock.
type Call struct {
	Query    string
	PageSize int
}

// Response is a scripted Fetch result. When Release is non-nil, Fetch blocks
// until it is closed or the context ends.
type Response struct {
	Items   []photo.Item
	Err     error
	Release <-chan struct{}
}

// Mock is a scripted Provider for tests.
type Mock struct {
	mu        sync.Mutex
	responses map[string]Response
	fallback  Response
	calls     []Call
}

// NewMock creates a mock that answers every query with an empty-result error
// until responses are registered.
func NewMock() *Mock {
	return &Mock{responses: make(map[string]Response)}
}

// Respond registers the response for query.
func (m *Mock) Respond(query string, r Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[query] = r
}

// RespondAll sets the response used for unregistered queries.
func (m *Mock) RespondAll(r Response) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = r
}

// Calls returns the recorded Fetch calls.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Fetch implements Provider.
func (m *Mock) Fetch(ctx context.Context, query string, pageSize int) ([]photo.Item, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Query: query, PageSize: pageSize})
	r, ok := m.responses[query]
	if !ok {
		r = m.fallback
	}
	m.mu.Unlock()

	if r.Release != nil {
		select {
		case <-r.Release:
		case <-ctx.Done():
			return nil, Unavailable(query, ctx.Err())
		}
	}

	if r.Err != nil {
		return nil, r.Err
	}
	if len(r.Items) == 0 {
		return nil, Empty(query)
	}
	if len(r.Items) > pageSize {
		return r.Items[:pageSize], nil
	}
	return r.Items, nil
}

// Verify Mock implements Provider at compile time.
var _ Provider = (*Mock)(nil)
