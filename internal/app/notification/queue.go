// Package notification holds the per-session queue of auto-expiring toasts.
package notification

import (
	"sync"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/notification/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Queue keeps toasts in insertion order and removes each one when its
// lifetime elapses or when it is dismissed, whichever comes first.
type Queue struct {
	mu     sync.Mutex
	clock  clock.Clock
	toasts []domain.Toast
	timers map[string]clock.Timer
}

// NewQueue creates an empty queue driven by clk.
func NewQueue(clk clock.Clock) *Queue {
	return &Queue{
		clock:  clk,
		timers: make(map[string]clock.Timer),
	}
}

// Push assigns the toast a time-ordered id, appends it and schedules its expiry.
func (q *Queue) Push(t domain.Toast) domain.Toast {
	t.ID = newToastID()
	t.Duration = t.Lifetime()
	t.CreatedAt = q.clock.Now()

	q.mu.Lock()
	q.toasts = append(q.toasts, t)
	q.mu.Unlock()

	id := t.ID
	timer := q.clock.AfterFunc(t.Duration, func() { q.Dismiss(id) })

	q.mu.Lock()
	if q.indexOf(id) >= 0 {
		q.timers[id] = timer
	}
	q.mu.Unlock()

	return t
}

// Dismiss removes the toast with id. Unknown ids are ignored.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i := q.indexOf(id); i >= 0 {
		q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
	}
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
}

// List returns the live toasts in insertion order.
func (q *Queue) List() []domain.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]domain.Toast(nil), q.toasts...)
}

// Len returns the number of live toasts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

// Close stops every pending expiry and drops all toasts.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.toasts = nil
}

func (q *Queue) indexOf(id string) int {
	for i, t := range q.toasts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// newToastID returns a UUIDv7, which sorts by creation time.
func newToastID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
