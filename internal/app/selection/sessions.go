package selection

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	catalogcontracts "github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	checkoutcontracts "github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/notification"
	"github.com/light-bringer/storefront-service/internal/app/selection/contracts"
	"github.com/light-bringer/storefront-service/internal/app/selection/repo"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

var _ checkoutcontracts.SessionProvider = (*Sessions)(nil)

// Sessions lazily creates one Store per device id. Each store sees the shared
// backend through keys prefixed with its device id. Stores idle for longer
// than the eviction window are flushed and dropped by EvictIdle.
type Sessions struct {
	mu      sync.Mutex
	stores  map[string]*session
	catalog catalogcontracts.CatalogReader
	storage contracts.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

type session struct {
	store    *Store
	lastUsed time.Time
}

func NewSessions(catalog catalogcontracts.CatalogReader, storage contracts.Storage, clk clock.Clock, logger *slog.Logger) *Sessions {
	return &Sessions{
		stores:  make(map[string]*session),
		catalog: catalog,
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// Get returns the device's store, restoring it from storage on first use.
// The restore runs outside the lock; if two requests race, the first store
// registered wins.
func (s *Sessions) Get(ctx context.Context, deviceID string) *Store {
	if store, ok := s.touch(deviceID); ok {
		return store
	}

	store := NewStore(ctx, StoreOptions{
		Catalog: s.catalog,
		Storage: repo.NewScopedStorage(s.storage, deviceID),
		Toasts:  notification.NewQueue(s.clock),
		Logger:  s.logger.With(slog.String("device_id", deviceID)),
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.stores[deviceID]; ok {
		existing.lastUsed = s.clock.Now()
		return existing.store
	}
	s.stores[deviceID] = &session{store: store, lastUsed: s.clock.Now()}
	return store
}

func (s *Sessions) touch(deviceID string) (*Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.stores[deviceID]
	if !ok {
		return nil, false
	}
	sess.lastUsed = s.clock.Now()
	return sess.store, true
}

// Session returns the device's store as checkout sees it.
func (s *Sessions) Session(ctx context.Context, deviceID string) checkoutcontracts.Session {
	return s.Get(ctx, deviceID)
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stores)
}

// EvictIdle flushes and drops every store not used within maxIdle. It
// returns the number of stores dropped. A store whose flush fails is still
// dropped, since every mutation already persisted it once.
func (s *Sessions) EvictIdle(ctx context.Context, maxIdle time.Duration) (int, error) {
	cutoff := s.clock.Now().Add(-maxIdle)

	s.mu.Lock()
	var idle []*Store
	for id, sess := range s.stores {
		if sess.lastUsed.Before(cutoff) {
			idle = append(idle, sess.store)
			delete(s.stores, id)
		}
	}
	s.mu.Unlock()

	return len(idle), flushAll(ctx, idle)
}

// Flush persists every session concurrently and closes their toast queues.
// One failing store does not stop the others.
func (s *Sessions) Flush(ctx context.Context) error {
	s.mu.Lock()
	stores := make([]*Store, 0, len(s.stores))
	for _, sess := range s.stores {
		stores = append(stores, sess.store)
	}
	s.mu.Unlock()

	return flushAll(ctx, stores)
}

func flushAll(ctx context.Context, stores []*Store) error {
	errs := make([]error, len(stores))
	var g errgroup.Group
	for i, store := range stores {
		g.Go(func() error {
			defer store.Toasts().Close()
			errs[i] = store.Flush(ctx)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
