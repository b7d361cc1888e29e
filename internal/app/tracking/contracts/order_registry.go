package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/tracking/domain"
)

// OrderRegistry stores tracked orders keyed by their normalized order number.
type OrderRegistry interface {
	// Find returns domain.ErrOrderNotFound on a miss.
	Find(ctx context.Context, orderNumber string) (*domain.TrackedOrder, error)
	// Register returns domain.ErrDuplicateOrder if the number is taken.
	Register(ctx context.Context, order *domain.TrackedOrder) error
}
