package cache

import (
	"context"
	"sync"
	"time"

	"sdc/internal/shared/biztime"
)

// MemoryWarningStateStore is the in-process fallback used when Redis is
// disabled and in tests. Expiry is checked lazily on read.
type MemoryWarningStateStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewMemoryWarningStateStore() *MemoryWarningStateStore {
	return &MemoryWarningStateStore{entries: make(map[string]time.Time)}
}

func (s *MemoryWarningStateStore) Dismiss(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = biztime.NowUTC().Add(ttl)
	return nil
}

func (s *MemoryWarningStateStore) IsDismissed(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deadline, ok := s.entries[token]
	if !ok {
		return false, nil
	}
	if biztime.NowUTC().After(deadline) {
		delete(s.entries, token)
		return false, nil
	}
	return true, nil
}

func (s *MemoryWarningStateStore) Reset(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
