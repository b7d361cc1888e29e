package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

// WorkflowRepository holds the open checkout of each device.
type WorkflowRepository interface {
	// Create stores w for deviceID, replacing any previous checkout.
	Create(ctx context.Context, deviceID string, w *domain.Workflow) error

	// Update runs fn against the device's workflow while holding it exclusively.
	// Returns domain.ErrCheckoutNotFound if the device has no checkout.
	Update(ctx context.Context, deviceID string, fn func(w *domain.Workflow) error) error
}
