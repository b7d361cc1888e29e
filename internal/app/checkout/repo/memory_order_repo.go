package repo

import (
	"context"
	"sync"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

// MemoryOrderRepo keeps placed orders in memory and writes their events to
// a MemoryOutbox.
type MemoryOrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	outbox *MemoryOutbox
}

var _ contracts.OrderRepository = (*MemoryOrderRepo)(nil)

func NewMemoryOrderRepo(outbox *MemoryOutbox) *MemoryOrderRepo {
	return &MemoryOrderRepo{
		orders: make(map[string]*domain.Order),
		outbox: outbox,
	}
}

func (r *MemoryOrderRepo) Save(_ context.Context, order *domain.Order) error {
	events := make([]*contracts.OutboxEvent, 0, len(order.DomainEvents()))
	for _, event := range order.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return err
		}
		events = append(events, enrichEvent(event, payload))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.Number()]; exists {
		return domain.ErrDuplicateOrder
	}
	r.orders[order.Number()] = order
	r.outbox.append(events...)
	return nil
}

// Get returns a saved order.
func (r *MemoryOrderRepo) Get(_ context.Context, number string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[number]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}
