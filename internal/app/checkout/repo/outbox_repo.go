package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// OutboxRepo implements the outbox contracts on Spanner.
type OutboxRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_outbox.Model
}

var (
	_ contracts.OutboxRepository = (*OutboxRepo)(nil)
	_ contracts.OutboxReader     = (*OutboxRepo)(nil)
	_ contracts.OutboxRelayStore = (*OutboxRepo)(nil)
)

func NewOutboxRepo(client *spanner.Client, c *committer.Committer) *OutboxRepo {
	return &OutboxRepo{
		client:    client,
		committer: c,
		model:     m_outbox.NewModel(),
	}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	return r.model.InsertMut(&m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     spanner.NullJSON{Value: json.RawMessage(event.Payload), Valid: event.Payload != ""},
		Status:      event.Status,
	})
}

func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return enrichEvent(event, payload)
}

func (r *OutboxRepo) ListEvents(ctx context.Context, filter contracts.EventFilter) ([]*contracts.OutboxEvent, error) {
	q := query.From(m_outbox.TableName).Select(m_outbox.Columns()...)
	if filter.EventType != "" {
		q = q.Where(query.Eq(m_outbox.EventType, filter.EventType))
	}
	if filter.AggregateID != "" {
		q = q.Where(query.Eq(m_outbox.AggregateID, filter.AggregateID))
	}
	if filter.Status != "" {
		q = q.Where(query.Eq(m_outbox.Status, filter.Status))
	}
	q = q.OrderBy(m_outbox.CreatedAt, query.Desc)
	if filter.Limit > 0 {
		q = q.Limit(int64(filter.Limit))
	}
	return r.query(ctx, q.Build())
}

func (r *OutboxRepo) Pending(ctx context.Context, limit int) ([]*contracts.OutboxEvent, error) {
	q := query.From(m_outbox.TableName).
		Select(m_outbox.Columns()...).
		Where(query.Eq(m_outbox.Status, m_outbox.StatusPending)).
		OrderBy(m_outbox.CreatedAt, query.Asc)
	if limit > 0 {
		q = q.Limit(int64(limit))
	}
	return r.query(ctx, q.Build())
}

func (r *OutboxRepo) MarkCompleted(ctx context.Context, eventID string) error {
	plan := committer.NewPlan()
	plan.Add(r.model.CompleteMut(eventID))
	return r.committer.Apply(ctx, plan)
}

// MarkFailed reads the retry count and writes the bumped value in one
// read-write transaction.
func (r *OutboxRepo) MarkFailed(ctx context.Context, eventID, reason string, maxRetries int64) error {
	return r.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, m_outbox.TableName, spanner.Key{eventID}, []string{m_outbox.RetryCount})
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return ErrEventNotFound
			}
			return err
		}

		var retries int64
		if err := row.Column(0, &retries); err != nil {
			return err
		}
		retries++

		status := m_outbox.StatusPending
		if retries >= maxRetries {
			status = m_outbox.StatusFailed
		}
		return txn.BufferWrite([]*spanner.Mutation{r.model.RetryMut(eventID, status, retries, reason)})
	})
}

const purgeSQL = `DELETE FROM outbox_events
WHERE (status = 'completed' AND processed_at < @completedCutoff)
   OR (status = 'failed' AND processed_at < @failedCutoff)`

func (r *OutboxRepo) Purge(ctx context.Context, completedBefore, failedBefore time.Time) (int64, error) {
	var deleted int64
	err := r.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, spanner.Statement{
			SQL: purgeSQL,
			Params: map[string]interface{}{
				"completedCutoff": completedBefore,
				"failedCutoff":    failedBefore,
			},
		})
		deleted = n
		return err
	})
	return deleted, err
}

// CountPurgeable counts what Purge would delete, by status.
func (r *OutboxRepo) CountPurgeable(ctx context.Context, completedBefore, failedBefore time.Time) (map[string]int64, error) {
	counts := make(map[string]int64)
	for status, cutoff := range map[string]time.Time{
		m_outbox.StatusCompleted: completedBefore,
		m_outbox.StatusFailed:    failedBefore,
	} {
		stmt := query.From(m_outbox.TableName).
			Where(query.Eq(m_outbox.Status, status)).
			Where(query.Lt(m_outbox.ProcessedAt, cutoff)).
			Count().
			Build()

		iter := r.client.Single().Query(ctx, stmt)
		row, err := iter.Next()
		if err != nil {
			iter.Stop()
			return nil, fmt.Errorf("failed to count %s events: %w", status, err)
		}
		var n int64
		err = row.Columns(&n)
		iter.Stop()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s count: %w", status, err)
		}
		counts[status] = n
	}
	return counts, nil
}

func (r *OutboxRepo) query(ctx context.Context, stmt spanner.Statement) ([]*contracts.OutboxEvent, error) {
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*contracts.OutboxEvent
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var data m_outbox.Data
		if err := row.Columns(data.Pointers()...); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, fromData(&data))
	}
	return events, nil
}

func fromData(d *m_outbox.Data) *contracts.OutboxEvent {
	e := &contracts.OutboxEvent{
		EventID:     d.EventID,
		EventType:   d.EventType,
		AggregateID: d.AggregateID,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		RetryCount:  d.RetryCount,
	}
	if d.Payload.Valid {
		e.Payload = d.Payload.String()
	}
	if d.ProcessedAt.Valid {
		e.ProcessedAt = d.ProcessedAt.Time
	}
	if d.ErrorMessage.Valid {
		e.ErrorMessage = d.ErrorMessage.StringVal
	}
	return e
}
