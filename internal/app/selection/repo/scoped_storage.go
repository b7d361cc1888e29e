package repo

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/selection/contracts"
)

// ScopedStorage prefixes every key with "<scope>:" so that several devices
// can share one backend.
type ScopedStorage struct {
	inner contracts.Storage
	scope string
}

// NewScopedStorage wraps inner. An empty scope leaves keys untouched.
func NewScopedStorage(inner contracts.Storage, scope string) *ScopedStorage {
	return &ScopedStorage{inner: inner, scope: scope}
}

func (s *ScopedStorage) Load(ctx context.Context, key string) ([]byte, error) {
	return s.inner.Load(ctx, s.key(key))
}

func (s *ScopedStorage) Save(ctx context.Context, key string, value []byte) error {
	return s.inner.Save(ctx, s.key(key), value)
}

func (s *ScopedStorage) key(key string) string {
	if s.scope == "" {
		return key
	}
	return s.scope + ":" + key
}
