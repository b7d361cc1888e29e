package contracts

import "context"

// Storage is a durable key-value store for serialized selection collections.
// Load returns domain.ErrKeyNotFound when the key was never written.
// Save rewrites the whole value.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
