package graphdb

import (
	"context"
	"sync"
)

// MemoryClient is an in-memory Client returning a fixed set of rows. It lets
// loaders and the CLI be exercised without a running database.
type MemoryClient struct {
	mu      sync.Mutex
	records []Record
	err     error
	calls   []ExecutedQuery
	closed  bool
}

// ExecutedQuery captures a cypher statement and its parameters.
type ExecutedQuery struct {
	Query  string
	Params map[string]any
}

// NewMemoryClient returns a client whose every Read yields records.
func NewMemoryClient(records ...Record) *MemoryClient {
	return &MemoryClient{records: records}
}

// WithError configures the client to fail subsequent reads with err.
func (m *MemoryClient) WithError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

func (m *MemoryClient) Read(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, ExecutedQuery{Query: cypher, Params: cloneMap(params)})
	if m.err != nil {
		return nil, m.err
	}

	out := make([]Record, len(m.records))
	for i, r := range m.records {
		out[i] = Record(cloneMap(r))
	}
	return out, nil
}

func (m *MemoryClient) Close(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Calls returns a snapshot of executed queries.
func (m *MemoryClient) Calls() []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ExecutedQuery, len(m.calls))
	copy(out, m.calls)
	return out
}

// Closed reports whether Close has been called.
func (m *MemoryClient) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
