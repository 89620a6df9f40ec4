// internal/save/memory_store.go
package save

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps saves in process memory. Used for headless runs.
type MemoryStore struct {
	mu    sync.RWMutex
	saves map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{saves: make(map[string][]byte)}
}

func (s *MemoryStore) Write(_ context.Context, name string, data []byte) error {
	if err := validName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[name] = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStore) Read(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.saves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Close() error {
	return nil
}
