package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/notification/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

func titles(toasts []domain.Toast) []string {
	out := make([]string, len(toasts))
	for i, t := range toasts {
		out[i] = t.Title
	}
	return out
}

func TestQueue_Push(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))

	t.Run("assigns unique ordered ids and default duration", func(t *testing.T) {
		q := NewQueue(clk)
		a := q.Push(domain.Toast{Kind: domain.KindSuccess, Title: "a"})
		b := q.Push(domain.Toast{Kind: domain.KindSuccess, Title: "b"})

		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Less(t, a.ID, b.ID, "ids sort by creation")
		assert.Equal(t, domain.DefaultDuration, a.Duration)
		assert.Equal(t, clk.Now(), a.CreatedAt)
		assert.Equal(t, []string{"a", "b"}, titles(q.List()))
	})

	t.Run("no deduplication", func(t *testing.T) {
		q := NewQueue(clk)
		q.Push(domain.Toast{Title: "same"})
		q.Push(domain.Toast{Title: "same"})
		assert.Equal(t, 2, q.Len())
	})
}

func TestQueue_Expiry(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))
	q := NewQueue(clk)

	q.Push(domain.Toast{Title: "short"})
	q.Push(domain.Toast{Title: "order", Duration: 8 * time.Second})

	clk.Advance(4999 * time.Millisecond)
	assert.Equal(t, []string{"short", "order"}, titles(q.List()))

	clk.Advance(time.Millisecond)
	assert.Equal(t, []string{"order"}, titles(q.List()))

	clk.Advance(3 * time.Second)
	assert.Empty(t, q.List())
	assert.Equal(t, 0, clk.Pending())
}

func TestQueue_Dismiss(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC))

	t.Run("removes immediately and cancels expiry", func(t *testing.T) {
		q := NewQueue(clk)
		a := q.Push(domain.Toast{Title: "a"})
		q.Push(domain.Toast{Title: "b"})

		q.Dismiss(a.ID)
		assert.Equal(t, []string{"b"}, titles(q.List()))
		assert.Equal(t, 1, clk.Pending())

		clk.Advance(domain.DefaultDuration)
		assert.Empty(t, q.List())
	})

	t.Run("unknown and repeated ids are no-ops", func(t *testing.T) {
		q := NewQueue(clk)
		a := q.Push(domain.Toast{Title: "a"})

		q.Dismiss("missing")
		q.Dismiss(a.ID)
		q.Dismiss(a.ID)
		assert.Empty(t, q.List())
	})

	t.Run("late expiry after dismissal is harmless", func(t *testing.T) {
		q := NewQueue(clk)
		a := q.Push(domain.Toast{Title: "a"})
		q.Dismiss(a.ID)
		b := q.Push(domain.Toast{Title: "b"})

		// simulate the old timer firing anyway
		q.Dismiss(a.ID)

		require.Len(t, q.List(), 1)
		assert.Equal(t, b.ID, q.List()[0].ID)
	})
}

func TestQueue_Close(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	q := NewQueue(clk)
	q.Push(domain.Toast{Title: "a"})
	q.Push(domain.Toast{Title: "b"})

	q.Close()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 0, clk.Pending())
}
