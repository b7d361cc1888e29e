package repo

import (
	"context"
	"sync"
	"time"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// MemoryOutbox is the outbox used when no Spanner database is configured.
type MemoryOutbox struct {
	mu     sync.Mutex
	clock  clock.Clock
	events []*contracts.OutboxEvent
}

var (
	_ contracts.OutboxReader     = (*MemoryOutbox)(nil)
	_ contracts.OutboxRelayStore = (*MemoryOutbox)(nil)
)

func NewMemoryOutbox(clk clock.Clock) *MemoryOutbox {
	return &MemoryOutbox{clock: clk}
}

func (o *MemoryOutbox) append(events ...*contracts.OutboxEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.clock.Now()
	for _, e := range events {
		c := *e
		c.CreatedAt = now
		o.events = append(o.events, &c)
	}
}

func (o *MemoryOutbox) ListEvents(_ context.Context, filter contracts.EventFilter) ([]*contracts.OutboxEvent, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []*contracts.OutboxEvent
	for i := len(o.events) - 1; i >= 0; i-- {
		e := o.events[i]
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		if filter.AggregateID != "" && e.AggregateID != filter.AggregateID {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		c := *e
		out = append(out, &c)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (o *MemoryOutbox) Pending(_ context.Context, limit int) ([]*contracts.OutboxEvent, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var out []*contracts.OutboxEvent
	for _, e := range o.events {
		if e.Status != m_outbox.StatusPending {
			continue
		}
		c := *e
		out = append(out, &c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (o *MemoryOutbox) MarkCompleted(_ context.Context, eventID string) error {
	return o.update(eventID, func(e *contracts.OutboxEvent) {
		e.Status = m_outbox.StatusCompleted
		e.ProcessedAt = o.clock.Now()
		e.ErrorMessage = ""
	})
}

func (o *MemoryOutbox) MarkFailed(_ context.Context, eventID, reason string, maxRetries int64) error {
	return o.update(eventID, func(e *contracts.OutboxEvent) {
		e.RetryCount++
		e.ErrorMessage = reason
		if e.RetryCount >= maxRetries {
			e.Status = m_outbox.StatusFailed
			e.ProcessedAt = o.clock.Now()
		}
	})
}

func (o *MemoryOutbox) Purge(_ context.Context, completedBefore, failedBefore time.Time) (int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	kept := o.events[:0]
	var purged int64
	for _, e := range o.events {
		switch {
		case e.Status == m_outbox.StatusCompleted && e.ProcessedAt.Before(completedBefore),
			e.Status == m_outbox.StatusFailed && e.ProcessedAt.Before(failedBefore):
			purged++
		default:
			kept = append(kept, e)
		}
	}
	o.events = kept
	return purged, nil
}

func (o *MemoryOutbox) update(eventID string, fn func(e *contracts.OutboxEvent)) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, e := range o.events {
		if e.EventID == eventID {
			fn(e)
			return nil
		}
	}
	return ErrEventNotFound
}
