package go_back

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

type Request struct {
	DeviceID string
}

type Response struct {
	Step domain.Step
}

// Interactor handles the go back use case.
type Interactor struct {
	workflows contracts.WorkflowRepository
}

// NewInteractor creates a new go back interactor.
func NewInteractor(workflows contracts.WorkflowRepository) *Interactor {
	return &Interactor{workflows: workflows}
}

// Execute returns to the previous step. Entered details are kept.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp := &Response{}
	err := i.workflows.Update(ctx, req.DeviceID, func(w *domain.Workflow) error {
		if err := w.Back(); err != nil {
			return err
		}
		resp.Step = w.Step()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
