package submit_delivery

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

// Request carries the delivery form.
type Request struct {
	DeviceID string
	Delivery domain.DeliveryDetails
}

// Response reports where the checkout is after submission. MissingFields is
// set when the details were incomplete and the step did not change.
type Response struct {
	Step          domain.Step
	MissingFields []string
}

// Interactor handles the submit delivery use case.
type Interactor struct {
	workflows contracts.WorkflowRepository
}

// NewInteractor creates a new submit delivery interactor.
func NewInteractor(workflows contracts.WorkflowRepository) *Interactor {
	return &Interactor{workflows: workflows}
}

// Execute stores the details and advances to the payment step. Incomplete
// details are kept so the form can be re-shown, and ErrIncompleteDelivery is
// returned.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp := &Response{}
	err := i.workflows.Update(ctx, req.DeviceID, func(w *domain.Workflow) error {
		if w.Step() != domain.StepDeliveryDetails {
			return domain.ErrWrongStep
		}
		if err := w.SetDelivery(req.Delivery); err != nil {
			return err
		}
		resp.MissingFields = w.Delivery().MissingFields()
		err := w.Next()
		resp.Step = w.Step()
		return err
	})
	if err != nil {
		return resp, err
	}
	return resp, nil
}
