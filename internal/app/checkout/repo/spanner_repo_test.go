package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_order"
	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/testutil"
)

func TestSpannerOrderRepo(t *testing.T) {
	client := testutil.SetupSpannerTest(t)
	ctx := context.Background()

	c := committer.NewCommitter(client)
	outbox := NewOutboxRepo(client, c)
	orders := NewOrderRepo(c, outbox)

	order := testOrder(placedAt)
	require.NoError(t, orders.Save(ctx, order))
	assert.ErrorIs(t, orders.Save(ctx, order), domain.ErrDuplicateOrder)

	testutil.AssertRowCount(t, client, m_order.TableName, 1)
	testutil.AssertRowCount(t, client, m_outbox.TableName, 1)

	pending, err := outbox.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, order.Number(), pending[0].AggregateID)
	assert.Contains(t, pending[0].Payload, "ada@example.com")

	require.NoError(t, outbox.MarkFailed(ctx, pending[0].EventID, "broker down", 3))
	listed, err := outbox.ListEvents(ctx, contracts.EventFilter{AggregateID: order.Number()})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(1), listed[0].RetryCount)
	assert.Equal(t, m_outbox.StatusPending, listed[0].Status)

	require.NoError(t, outbox.MarkCompleted(ctx, pending[0].EventID))
	pending, err = outbox.Pending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, outbox.MarkFailed(ctx, "missing", "x", 3), ErrEventNotFound)
}
