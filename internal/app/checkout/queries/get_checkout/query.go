package get_checkout

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	selection "github.com/light-bringer/storefront-service/internal/app/selection/domain"
)

// Result is a snapshot of one device's checkout.
type Result struct {
	Step          domain.Step
	Lines         []selection.CartLine
	Delivery      domain.DeliveryDetails
	MissingFields []string
	Payment       domain.PaymentMethod
	Coupon        *domain.Coupon
	Totals        domain.Totals
	Processing    bool
	Confirmation  *domain.Confirmation
}

// Query handles the get checkout query use case.
type Query struct {
	workflows contracts.WorkflowRepository
}

// NewQuery creates a new get checkout query.
func NewQuery(workflows contracts.WorkflowRepository) *Query {
	return &Query{workflows: workflows}
}

// Execute returns the device's checkout or ErrCheckoutNotFound.
func (q *Query) Execute(ctx context.Context, deviceID string) (*Result, error) {
	var res *Result
	err := q.workflows.Update(ctx, deviceID, func(w *domain.Workflow) error {
		res = &Result{
			Step:          w.Step(),
			Lines:         w.Lines(),
			Delivery:      w.Delivery(),
			MissingFields: w.Delivery().MissingFields(),
			Payment:       w.Payment(),
			Totals:        w.Summary(),
			Processing:    w.Processing(),
		}
		if c, ok := w.Coupon(); ok {
			res.Coupon = &c
		}
		if c, err := w.Confirmation(); err == nil {
			res.Confirmation = &c
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
