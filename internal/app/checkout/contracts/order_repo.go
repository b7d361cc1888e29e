package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

// OrderRepository persists placed orders. Save writes the order together with
// its domain events so that either both are stored or neither is.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
}
