package get_checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/app/checkout/repo"
	selection "github.com/light-bringer/storefront-service/internal/app/selection/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()
	workflows := repo.NewMemoryWorkflowRepo()
	q := NewQuery(workflows)

	_, err := q.Execute(ctx, "device-1")
	assert.ErrorIs(t, err, domain.ErrCheckoutNotFound)

	lines := []selection.CartLine{{ProductID: "brochures", Name: "Brochures", Price: money.MustParse("29.99"), Quantity: 2}}
	require.NoError(t, workflows.Create(ctx, "device-1", domain.NewWorkflow(lines)))

	res, err := q.Execute(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepDeliveryDetails, res.Step)
	assert.Len(t, res.MissingFields, 8)
	assert.Equal(t, domain.PaymentCard, res.Payment.Type())
	assert.Nil(t, res.Coupon)
	assert.Nil(t, res.Confirmation)
	assert.False(t, res.Processing)
	assert.Equal(t, "59.98", res.Totals.Subtotal.String())
	assert.True(t, res.Totals.Shipping.IsZero())
}
