package memory

import (
	"context"
	"sync"

	"github.com/arunvm123/eventbooking-demo/kvstore"
)

// MemoryStore keeps values in a map. Contents vanish with the process.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// NewMemoryStoreWithData starts from a copy of data, for fixtures.
func NewMemoryStoreWithData(data map[string]string) *MemoryStore {
	s := NewMemoryStore()
	for k, v := range data {
		s.data[k] = v
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return "", kvstore.ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
