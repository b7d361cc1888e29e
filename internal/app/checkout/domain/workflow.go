package domain

import (
	"time"

	selection "github.com/light-bringer/storefront-service/internal/app/selection/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// Step is a checkout stage.
type Step int

const (
	StepDeliveryDetails Step = iota + 1
	StepPaymentMethod
	StepOrderSummary
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepDeliveryDetails:
		return "delivery_details"
	case StepPaymentMethod:
		return "payment_method"
	case StepOrderSummary:
		return "order_summary"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// Title is the label shown in the progress header.
func (s Step) Title() string {
	switch s {
	case StepDeliveryDetails:
		return "Delivery Details"
	case StepPaymentMethod:
		return "Payment Method"
	case StepOrderSummary:
		return "Order Summary"
	case StepConfirmation:
		return "Order Confirmation"
	default:
		return ""
	}
}

// Confirmation is what the terminal step shows.
type Confirmation struct {
	OrderNumber       string
	Total             money.Money
	ItemCount         int
	EstimatedDelivery time.Time
}

// Workflow drives one checkout from delivery details to confirmation.
// Lines are snapshotted when the workflow starts.
type Workflow struct {
	step       Step
	lines      []selection.CartLine
	delivery   DeliveryDetails
	payment    PaymentMethod
	coupon     *Coupon
	processing bool
	order      *Order
}

// NewWorkflow starts a checkout for lines.
func NewWorkflow(lines []selection.CartLine) *Workflow {
	return &Workflow{
		step:     StepDeliveryDetails,
		lines:    append([]selection.CartLine(nil), lines...),
		delivery: NewDeliveryDetails(),
		payment:  CardPayment{},
	}
}

func (w *Workflow) Step() Step                { return w.step }
func (w *Workflow) Delivery() DeliveryDetails { return w.delivery }
func (w *Workflow) Payment() PaymentMethod    { return w.payment }
func (w *Workflow) Processing() bool          { return w.processing }

func (w *Workflow) Lines() []selection.CartLine {
	return append([]selection.CartLine(nil), w.lines...)
}

// Coupon returns the applied coupon, if any.
func (w *Workflow) Coupon() (Coupon, bool) {
	if w.coupon == nil {
		return Coupon{}, false
	}
	return *w.coupon, true
}

// Order returns the placed order once the workflow is complete.
func (w *Workflow) Order() (*Order, bool) {
	return w.order, w.order != nil
}

// Summary prices the snapshotted lines with the applied coupon.
func (w *Workflow) Summary() Totals {
	return ComputeTotals(w.lines, w.coupon)
}

// SetDelivery replaces the delivery details. It does not validate them.
func (w *Workflow) SetDelivery(d DeliveryDetails) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if d.Country == "" {
		d.Country = DefaultCountry
	}
	w.delivery = d
	return nil
}

// SetPayment replaces the payment method.
func (w *Workflow) SetPayment(p PaymentMethod) error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if p == nil {
		return ErrUnknownPaymentType
	}
	w.payment = p
	return nil
}

// Next advances one step. Leaving DeliveryDetails requires complete details.
// OrderSummary only advances through placement.
func (w *Workflow) Next() error {
	if err := w.checkOpen(); err != nil {
		return err
	}

	switch w.step {
	case StepDeliveryDetails:
		if err := w.delivery.Validate(); err != nil {
			return err
		}
		w.step = StepPaymentMethod
	case StepPaymentMethod:
		w.step = StepOrderSummary
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Back returns to the previous step from PaymentMethod or OrderSummary.
func (w *Workflow) Back() error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	switch w.step {
	case StepPaymentMethod:
		w.step = StepDeliveryDetails
	case StepOrderSummary:
		w.step = StepPaymentMethod
	default:
		return ErrInvalidTransition
	}
	return nil
}

// ApplyCoupon looks code up and applies it. An unknown code leaves the
// current coupon in place.
func (w *Workflow) ApplyCoupon(code string) (Coupon, error) {
	if err := w.checkOpen(); err != nil {
		return Coupon{}, err
	}
	if w.step != StepOrderSummary {
		return Coupon{}, ErrWrongStep
	}

	c, ok := LookupCoupon(code)
	if !ok {
		return Coupon{}, ErrUnknownCoupon
	}
	w.coupon = &c
	return c, nil
}

// BeginPlacement marks the order as being placed. Until CompletePlacement or
// AbortPlacement every mutation, including a second BeginPlacement, fails
// with ErrOrderInProgress.
func (w *Workflow) BeginPlacement() error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if w.step != StepOrderSummary {
		return ErrWrongStep
	}
	if len(w.lines) == 0 {
		return ErrEmptyCart
	}
	w.processing = true
	return nil
}

// AbortPlacement clears the in-progress flag after a failed placement.
func (w *Workflow) AbortPlacement() {
	w.processing = false
}

// CompletePlacement records order and moves to Confirmation.
func (w *Workflow) CompletePlacement(order *Order) error {
	if !w.processing {
		return ErrInvalidTransition
	}
	w.processing = false
	w.order = order
	w.step = StepConfirmation
	return nil
}

// BuildOrder snapshots the workflow's current state into an Order.
func (w *Workflow) BuildOrder(now time.Time) *Order {
	return NewOrder(now, w.lines, w.delivery, w.payment, w.coupon)
}

// Confirmation returns the order confirmation once the workflow is complete.
func (w *Workflow) Confirmation() (Confirmation, error) {
	if w.order == nil {
		return Confirmation{}, ErrWrongStep
	}
	totals := w.order.Totals()
	return Confirmation{
		OrderNumber:       w.order.Number(),
		Total:             totals.Total,
		ItemCount:         totals.ItemCount,
		EstimatedDelivery: w.order.EstimatedDelivery(),
	}, nil
}

func (w *Workflow) checkOpen() error {
	if w.step == StepConfirmation {
		return ErrWorkflowComplete
	}
	if w.processing {
		return ErrOrderInProgress
	}
	return nil
}
