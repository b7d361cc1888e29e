package repo

import (
	"context"
	"sync"

	"github.com/light-bringer/storefront-service/internal/app/tracking/contracts"
	"github.com/light-bringer/storefront-service/internal/app/tracking/domain"
)

// MemoryRegistry keeps tracked orders in a map.
type MemoryRegistry struct {
	mu     sync.RWMutex
	orders map[string]*domain.TrackedOrder
}

var _ contracts.OrderRegistry = (*MemoryRegistry)(nil)

// NewMemoryRegistry creates a registry holding seed. Invalid seeds are rejected.
func NewMemoryRegistry(seed ...*domain.TrackedOrder) (*MemoryRegistry, error) {
	r := &MemoryRegistry{orders: make(map[string]*domain.TrackedOrder)}
	for _, o := range seed {
		if err := r.Register(context.Background(), o); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *MemoryRegistry) Find(_ context.Context, orderNumber string) (*domain.TrackedOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[domain.NormalizeOrderNumber(orderNumber)]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (r *MemoryRegistry) Register(_ context.Context, order *domain.TrackedOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}

	key := domain.NormalizeOrderNumber(order.OrderNumber)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[key]; exists {
		return domain.ErrDuplicateOrder
	}
	c := order.Clone()
	c.OrderNumber = key
	r.orders[key] = c
	return nil
}
