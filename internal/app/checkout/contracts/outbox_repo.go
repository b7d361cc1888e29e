package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

// OutboxEvent represents an enriched domain event ready for persistence.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	Payload      string // JSON
	Status       string
	CreatedAt    time.Time
	ProcessedAt  time.Time
	RetryCount   int64
	ErrorMessage string
}

// OutboxRepository builds outbox mutations for a commit plan.
type OutboxRepository interface {
	// InsertMut creates a mutation for inserting an outbox event
	InsertMut(event *OutboxEvent) *spanner.Mutation

	// EnrichEvent converts a domain event to an outbox event with metadata
	EnrichEvent(event domain.DomainEvent, payload string) *OutboxEvent
}

// EventFilter narrows an outbox listing. Empty fields match everything.
type EventFilter struct {
	EventType   string
	AggregateID string
	Status      string
	Limit       int
}

// OutboxReader lists stored events, newest first.
type OutboxReader interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*OutboxEvent, error)
}

// OutboxRelayStore is what the relay needs to drain the outbox.
type OutboxRelayStore interface {
	// Pending returns up to limit pending events, oldest first.
	Pending(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkCompleted(ctx context.Context, eventID string) error
	// MarkFailed records reason and bumps the retry count. The event stays
	// pending until it has failed maxRetries times.
	MarkFailed(ctx context.Context, eventID, reason string, maxRetries int64) error
	// Purge deletes completed events processed before completedBefore and
	// failed events processed before failedBefore.
	Purge(ctx context.Context, completedBefore, failedBefore time.Time) (int64, error)
}
