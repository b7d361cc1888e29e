package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
)

const (
	DefaultBatchSize  = 100
	DefaultMaxRetries = 5
)

// EventPublisher delivers one outbox event.
type EventPublisher interface {
	Publish(ctx context.Context, event *contracts.OutboxEvent) error
}

// RelayStats counts the outcome of one relay pass.
type RelayStats struct {
	Published int
	Failed    int
}

// Relay moves pending outbox events to a publisher.
type Relay struct {
	store      contracts.OutboxRelayStore
	publisher  EventPublisher
	batchSize  int
	maxRetries int64
	logger     *slog.Logger
}

// NewRelay creates a relay. Non-positive sizes fall back to the defaults.
func NewRelay(store contracts.OutboxRelayStore, publisher EventPublisher, batchSize int, maxRetries int64, logger *slog.Logger) *Relay {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{
		store:      store,
		publisher:  publisher,
		batchSize:  batchSize,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// RunOnce publishes one batch of pending events, oldest first. A publish
// failure is recorded on the event and does not stop the batch.
func (r *Relay) RunOnce(ctx context.Context) (RelayStats, error) {
	var stats RelayStats

	pending, err := r.store.Pending(ctx, r.batchSize)
	if err != nil {
		return stats, fmt.Errorf("failed to load pending events: %w", err)
	}

	for _, event := range pending {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if err := r.publisher.Publish(ctx, event); err != nil {
			stats.Failed++
			r.logger.WarnContext(ctx, "failed to publish event",
				slog.String("event_id", event.EventID),
				slog.String("event_type", event.EventType),
				slog.Int64("retry_count", event.RetryCount+1),
				slog.Any("error", err))
			if err := r.store.MarkFailed(ctx, event.EventID, err.Error(), r.maxRetries); err != nil {
				return stats, fmt.Errorf("failed to mark event %s failed: %w", event.EventID, err)
			}
			continue
		}

		if err := r.store.MarkCompleted(ctx, event.EventID); err != nil {
			return stats, fmt.Errorf("failed to mark event %s completed: %w", event.EventID, err)
		}
		stats.Published++
	}

	return stats, nil
}

// Drain runs passes until a pass publishes nothing or returns a short batch.
func (r *Relay) Drain(ctx context.Context) (RelayStats, error) {
	var total RelayStats
	for {
		stats, err := r.RunOnce(ctx)
		total.Published += stats.Published
		total.Failed += stats.Failed
		if err != nil {
			return total, err
		}
		if stats.Published == 0 || stats.Published+stats.Failed < r.batchSize {
			return total, nil
		}
	}
}
