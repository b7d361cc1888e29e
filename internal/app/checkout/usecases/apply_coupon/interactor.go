package apply_coupon

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

type Request struct {
	DeviceID string
	Code     string
}

// Response carries the applied coupon and the repriced totals.
type Response struct {
	Coupon domain.Coupon
	Totals domain.Totals
}

// Interactor handles the apply coupon use case.
type Interactor struct {
	workflows contracts.WorkflowRepository
}

// NewInteractor creates a new apply coupon interactor.
func NewInteractor(workflows contracts.WorkflowRepository) *Interactor {
	return &Interactor{workflows: workflows}
}

// Execute applies code at the order summary. An unknown code returns
// ErrUnknownCoupon and leaves the totals as they were.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp := &Response{}
	err := i.workflows.Update(ctx, req.DeviceID, func(w *domain.Workflow) error {
		c, err := w.ApplyCoupon(req.Code)
		if err != nil {
			return err
		}
		resp.Coupon = c
		resp.Totals = w.Summary()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
