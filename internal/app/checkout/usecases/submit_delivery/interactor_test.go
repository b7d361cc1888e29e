package submit_delivery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	"github.com/light-bringer/storefront-service/internal/app/checkout/repo"
)

func complete() domain.DeliveryDetails {
	return domain.DeliveryDetails{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100",
		Address: "1 Analytical Way", City: "London", State: "LDN", ZipCode: "N1",
	}
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("no checkout", func(t *testing.T) {
		uc := NewInteractor(repo.NewMemoryWorkflowRepo())
		_, err := uc.Execute(ctx, &Request{DeviceID: "device-1", Delivery: complete()})
		assert.ErrorIs(t, err, domain.ErrCheckoutNotFound)
	})

	t.Run("incomplete details stay on the step", func(t *testing.T) {
		workflows := repo.NewMemoryWorkflowRepo()
		require.NoError(t, workflows.Create(ctx, "device-1", domain.NewWorkflow(nil)))
		uc := NewInteractor(workflows)

		d := complete()
		d.Email = ""
		d.ZipCode = ""
		resp, err := uc.Execute(ctx, &Request{DeviceID: "device-1", Delivery: d})
		assert.ErrorIs(t, err, domain.ErrIncompleteDelivery)
		assert.Equal(t, domain.StepDeliveryDetails, resp.Step)
		assert.Equal(t, []string{"email", "zipCode"}, resp.MissingFields)

		require.NoError(t, workflows.Update(ctx, "device-1", func(w *domain.Workflow) error {
			assert.Equal(t, "Ada", w.Delivery().FirstName, "entered values are kept")
			return nil
		}))
	})

	t.Run("complete details advance", func(t *testing.T) {
		workflows := repo.NewMemoryWorkflowRepo()
		require.NoError(t, workflows.Create(ctx, "device-1", domain.NewWorkflow(nil)))
		uc := NewInteractor(workflows)

		resp, err := uc.Execute(ctx, &Request{DeviceID: "device-1", Delivery: complete()})
		require.NoError(t, err)
		assert.Equal(t, domain.StepPaymentMethod, resp.Step)
		assert.Empty(t, resp.MissingFields)

		_, err = uc.Execute(ctx, &Request{DeviceID: "device-1", Delivery: complete()})
		assert.ErrorIs(t, err, domain.ErrWrongStep)
	})
}
