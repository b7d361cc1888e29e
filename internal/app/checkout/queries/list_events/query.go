package list_events

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Query handles the list events query use case.
type Query struct {
	reader contracts.OutboxReader
}

// NewQuery creates a new list events query.
func NewQuery(reader contracts.OutboxReader) *Query {
	return &Query{reader: reader}
}

// Execute lists outbox events, newest first. The limit defaults to
// DefaultLimit and is capped at MaxLimit.
func (q *Query) Execute(ctx context.Context, filter contracts.EventFilter) ([]*contracts.OutboxEvent, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	return q.reader.ListEvents(ctx, filter)
}
