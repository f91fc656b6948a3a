package sessionstore

import (
	"context"
	"sync"

	"sdc/internal/domain/session"
)

// MemoryMirror is an in-process mirror used when Redis is disabled and in
// tests. No TTL is attached; expiry is enforced at read time by the store.
type MemoryMirror struct {
	mu      sync.RWMutex
	records map[string]session.Record
}

func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{records: make(map[string]session.Record)}
}

func (m *MemoryMirror) Save(_ context.Context, rec session.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.Token] = rec
	return nil
}

func (m *MemoryMirror) Get(_ context.Context, token string) (*session.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[token]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *MemoryMirror) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, token)
	return nil
}

func (m *MemoryMirror) List(_ context.Context) ([]session.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]session.Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}
