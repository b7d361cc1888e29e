package select_payment

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
)

// Request carries the payment form. Only the fields of Type are read.
type Request struct {
	DeviceID string
	Type     domain.PaymentType

	CardNumber string
	CardExpiry string
	CardCVV    string
	CardHolder string

	UPIID string

	Wallet string
}

type Response struct {
	Step domain.Step
}

// Interactor handles the select payment use case.
type Interactor struct {
	workflows contracts.WorkflowRepository
}

// NewInteractor creates a new select payment interactor.
func NewInteractor(workflows contracts.WorkflowRepository) *Interactor {
	return &Interactor{workflows: workflows}
}

// Execute records the payment method and advances to the order summary.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	method, err := PaymentFromRequest(req)
	if err != nil {
		return nil, err
	}

	resp := &Response{}
	err = i.workflows.Update(ctx, req.DeviceID, func(w *domain.Workflow) error {
		if w.Step() != domain.StepPaymentMethod {
			return domain.ErrWrongStep
		}
		if err := w.SetPayment(method); err != nil {
			return err
		}
		if err := w.Next(); err != nil {
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

// PaymentFromRequest builds the PaymentMethod variant named by req.Type.
func PaymentFromRequest(req *Request) (domain.PaymentMethod, error) {
	switch req.Type {
	case domain.PaymentCard:
		return domain.CardPayment{
			Number: req.CardNumber,
			Expiry: req.CardExpiry,
			CVV:    req.CardCVV,
			Holder: req.CardHolder,
		}, nil
	case domain.PaymentUPI:
		return domain.UPIPayment{ID: req.UPIID}, nil
	case domain.PaymentWallet:
		w, err := domain.ParseWallet(req.Wallet)
		if err != nil {
			return nil, err
		}
		return domain.WalletPayment{Wallet: w}, nil
	default:
		return nil, domain.ErrUnknownPaymentType
	}
}
