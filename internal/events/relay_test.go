package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/app/checkout/repo"
	selection "github.com/light-bringer/storefront-service/internal/app/selection/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/logger"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

type fakePublisher struct {
	published []*contracts.OutboxEvent
	failFor   map[string]bool
}

func (p *fakePublisher) Publish(_ context.Context, event *contracts.OutboxEvent) error {
	if p.failFor[event.AggregateID] {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, event)
	return nil
}

func seedOrders(t *testing.T, clk *clock.MockClock, n int) (*repo.MemoryOutbox, []string) {
	t.Helper()
	outbox := repo.NewMemoryOutbox(clk)
	orders := repo.NewMemoryOrderRepo(outbox)

	lines := []selection.CartLine{{ProductID: "journals", Name: "Journals", Price: money.MustParse("34.99"), Quantity: 1}}
	delivery := domain.DeliveryDetails{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

	var numbers []string
	for i := 0; i < n; i++ {
		clk.Advance(time.Second)
		order := domain.NewOrder(clk.Now(), lines, delivery, domain.UPIPayment{ID: "ada@upi"}, nil)
		require.NoError(t, orders.Save(context.Background(), order))
		numbers = append(numbers, order.Number())
	}
	return outbox, numbers
}

func TestRelay_RunOnce(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	outbox, numbers := seedOrders(t, clk, 3)

	pub := &fakePublisher{failFor: map[string]bool{numbers[1]: true}}
	relay := NewRelay(outbox, pub, 0, 2, logger.Discard())

	stats, err := relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, RelayStats{Published: 2, Failed: 1}, stats)
	require.Len(t, pub.published, 2)
	assert.Equal(t, numbers[0], pub.published[0].AggregateID, "oldest first")

	pending, err := outbox.Pending(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1, "a failed publish stays pending until retries run out")
	assert.Equal(t, int64(1), pending[0].RetryCount)
	assert.Equal(t, "broker unavailable", pending[0].ErrorMessage)

	stats, err = relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, RelayStats{Failed: 1}, stats)

	failed, err := outbox.ListEvents(ctx, contracts.EventFilter{Status: m_outbox.StatusFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, numbers[1], failed[0].AggregateID)

	stats, err = relay.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats)
}

func TestRelay_Drain(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	outbox, _ := seedOrders(t, clk, 5)

	pub := &fakePublisher{}
	stats, err := NewRelay(outbox, pub, 2, 3, logger.Discard()).Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Published)

	completed, err := outbox.ListEvents(ctx, contracts.EventFilter{Status: m_outbox.StatusCompleted})
	require.NoError(t, err)
	assert.Len(t, completed, 5)
}

func TestRelay_Cancelled(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	outbox, _ := seedOrders(t, clk, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pub := &fakePublisher{}
	_, err := NewRelay(outbox, pub, 10, 3, logger.Discard()).RunOnce(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, pub.published)
}

func TestBuildEnvelope(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	env := BuildEnvelope(&contracts.OutboxEvent{
		EventID:     "evt-1",
		EventType:   "order.placed",
		AggregateID: "ORD-1",
		Payload:     `{"orderNumber":"ORD-1","total":62.98}`,
		CreatedAt:   created,
	})

	require.NoError(t, env.Validate("order.placed", 1))
	assert.Equal(t, "ORD-1", env.PartitionKey)
	assert.Equal(t, Producer, env.Producer)
	assert.Equal(t, "storefront/order.placed.v1", env.Schema)
	assert.Equal(t, created, env.OccurredAt)
	assert.Equal(t, "order.placed.v1", RoutingKey("order.placed"))

	body, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"payload":{"orderNumber":"ORD-1","total":62.98}`)

	assert.Error(t, env.Validate("order.shipped", 1))
	assert.Error(t, env.Validate("order.placed", 2))
}
