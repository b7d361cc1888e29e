package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/tracking/domain"
)

func TestMemoryRegistry(t *testing.T) {
	ctx := context.Background()
	reg, err := NewMemoryRegistry(SeedOrders()...)
	require.NoError(t, err)

	t.Run("seeded in-transit order", func(t *testing.T) {
		o, err := reg.Find(ctx, "ord-1234567890")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInTransit, o.Status)
		assert.Equal(t, "FedEx", o.Carrier)
		assert.Equal(t, 4, o.CompletedEvents())
		assert.Len(t, o.Events, 6)
		assert.False(t, o.Delivered())
	})

	t.Run("seeded delivered order", func(t *testing.T) {
		o, err := reg.Find(ctx, "ORD-0987654321")
		require.NoError(t, err)
		assert.Equal(t, 6, o.CompletedEvents())
		assert.True(t, o.Delivered())
		assert.Equal(t, "323.99", o.Total.String())
	})

	t.Run("miss", func(t *testing.T) {
		_, err := reg.Find(ctx, "ORD-0000000000")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("register normalizes and rejects duplicates", func(t *testing.T) {
		o := &domain.TrackedOrder{
			OrderNumber: "ord-42",
			Status:      domain.StatusProcessing,
			Events:      domain.NewTimeline(time.Now()),
		}
		require.NoError(t, reg.Register(ctx, o))
		assert.ErrorIs(t, reg.Register(ctx, o), domain.ErrDuplicateOrder)

		got, err := reg.Find(ctx, "ORD-42")
		require.NoError(t, err)
		assert.Equal(t, "ORD-42", got.OrderNumber)
	})

	t.Run("invalid timeline rejected", func(t *testing.T) {
		o := &domain.TrackedOrder{
			OrderNumber: "ORD-43",
			Status:      domain.StatusProcessing,
			Events:      []domain.Event{{Completed: false}, {Completed: true, Timestamp: time.Now()}},
		}
		assert.ErrorIs(t, reg.Register(ctx, o), domain.ErrTimelineNotPrefix)
	})

	t.Run("returned orders are copies", func(t *testing.T) {
		o, err := reg.Find(ctx, "ORD-1234567890")
		require.NoError(t, err)
		o.Events[0].Status = "tampered"

		again, err := reg.Find(ctx, "ORD-1234567890")
		require.NoError(t, err)
		assert.Equal(t, domain.StepOrderPlaced, again.Events[0].Status)
	})
}
