package track_order

import (
	"context"
	"errors"
	"time"

	"github.com/light-bringer/storefront-service/internal/app/tracking/contracts"
	"github.com/light-bringer/storefront-service/internal/app/tracking/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Messages shown inline next to the lookup form.
const (
	MessageEmptyQuery = "Please enter an order number"
	MessageNotFound   = "Order not found. Please check your order number and try again."
)

// Result is the outcome of a lookup. A miss is a result, not an error.
type Result struct {
	Found   bool
	Order   *domain.TrackedOrder
	Message string
}

// Query handles the track order query use case.
type Query struct {
	registry contracts.OrderRegistry
	clock    clock.Clock
	delay    time.Duration
}

// NewQuery creates a new track order query. Every lookup waits delay on clk
// before reading the registry.
func NewQuery(registry contracts.OrderRegistry, clk clock.Clock, delay time.Duration) *Query {
	return &Query{
		registry: registry,
		clock:    clk,
		delay:    delay,
	}
}

// Execute looks up orderNumber. Case and surrounding whitespace are ignored.
// An empty input returns ErrEmptyOrderNumber without waiting.
func (q *Query) Execute(ctx context.Context, orderNumber string) (*Result, error) {
	number := domain.NormalizeOrderNumber(orderNumber)
	if number == "" {
		return nil, domain.ErrEmptyOrderNumber
	}

	if err := clock.Sleep(ctx, q.clock, q.delay); err != nil {
		return nil, err
	}

	order, err := q.registry.Find(ctx, number)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return &Result{Message: MessageNotFound}, nil
	}
	if err != nil {
		return nil, err
	}

	return &Result{Found: true, Order: order}, nil
}
