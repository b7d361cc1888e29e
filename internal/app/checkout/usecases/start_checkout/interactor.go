package start_checkout

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

// Request identifies the device starting a checkout.
type Request struct {
	DeviceID string
}

// Response describes the new checkout.
type Response struct {
	Step   domain.Step
	Totals domain.Totals
}

// Interactor handles the start checkout use case.
type Interactor struct {
	workflows contracts.WorkflowRepository
	sessions  contracts.SessionProvider
}

// NewInteractor creates a new start checkout interactor.
func NewInteractor(workflows contracts.WorkflowRepository, sessions contracts.SessionProvider) *Interactor {
	return &Interactor{
		workflows: workflows,
		sessions:  sessions,
	}
}

// Execute snapshots the device's cart into a fresh workflow at the delivery
// step. An existing checkout is discarded unless an order is being placed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	lines := i.sessions.Session(ctx, req.DeviceID).CartLines()
	w := domain.NewWorkflow(lines)

	if err := i.workflows.Create(ctx, req.DeviceID, w); err != nil {
		return nil, err
	}

	return &Response{Step: w.Step(), Totals: w.Summary()}, nil
}
