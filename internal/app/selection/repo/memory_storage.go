package repo

import (
	"context"
	"sync"

	"github.com/light-bringer/storefront-service/internal/app/selection/contracts"
	"github.com/light-bringer/storefront-service/internal/app/selection/domain"
)

// MemoryStorage keeps values in a map. It is the default backend and the one
// used by tests.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

var _ contracts.Storage = (*MemoryStorage)(nil)

func (s *MemoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStorage) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}
