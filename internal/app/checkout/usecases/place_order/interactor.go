package place_order

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
	"github.com/light-bringer/storefront-service/internal/app/checkout/domain"
	notification "github.com/light-bringer/storefront-service/internal/app/notification/domain"
	trackingcontracts "github.com/light-bringer/storefront-service/internal/app/tracking/contracts"
	tracking "github.com/light-bringer/storefront-service/internal/app/tracking/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// ConfirmationToastDuration is how long the order toast stays up.
const ConfirmationToastDuration = 8 * time.Second

type Request struct {
	DeviceID string
}

type Response struct {
	Confirmation domain.Confirmation
}

// Options wires an Interactor. Delay is the simulated processing time.
type Options struct {
	Workflows contracts.WorkflowRepository
	Orders    contracts.OrderRepository
	Sessions  contracts.SessionProvider
	Tracking  trackingcontracts.OrderRegistry
	Clock     clock.Clock
	Delay     time.Duration
	Logger    *slog.Logger
}

// Interactor handles the place order use case.
type Interactor struct {
	workflows contracts.WorkflowRepository
	orders    contracts.OrderRepository
	sessions  contracts.SessionProvider
	tracking  trackingcontracts.OrderRegistry
	clock     clock.Clock
	delay     time.Duration
	logger    *slog.Logger
}

// NewInteractor creates a new place order interactor.
func NewInteractor(opts Options) *Interactor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{
		workflows: opts.Workflows,
		orders:    opts.Orders,
		sessions:  opts.Sessions,
		tracking:  opts.Tracking,
		clock:     opts.Clock,
		delay:     opts.Delay,
		logger:    logger,
	}
}

// Execute places the order for the device's checkout:
//  1. mark the workflow as processing, so a second submit fails
//  2. wait out the processing delay
//  3. build and save the order with its events
//  4. move the workflow to confirmation
//  5. remove the ordered lines from the cart, raise the toast and register the order for tracking
//
// If the wait is cancelled or the save fails the workflow returns to the
// order summary unchanged.
func (i *Interactor) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	if err := i.workflows.Update(ctx, req.DeviceID, (*domain.Workflow).BeginPlacement); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			i.abort(ctx, req.DeviceID)
		}
	}()

	if err := clock.Sleep(ctx, i.clock, i.delay); err != nil {
		return nil, err
	}

	var order *domain.Order
	if err := i.workflows.Update(ctx, req.DeviceID, func(w *domain.Workflow) error {
		order = w.BuildOrder(i.clock.Now())
		return nil
	}); err != nil {
		return nil, err
	}

	if err := i.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	var confirmation domain.Confirmation
	if err := i.workflows.Update(ctx, req.DeviceID, func(w *domain.Workflow) error {
		if err := w.CompletePlacement(order); err != nil {
			return err
		}
		c, err := w.Confirmation()
		confirmation = c
		return err
	}); err != nil {
		return nil, err
	}

	session := i.sessions.Session(ctx, req.DeviceID)
	session.RemoveOrdered(ctx, order.Lines())
	if toasts := session.Toasts(); toasts != nil {
		toasts.Push(notification.Toast{
			Kind:     notification.KindSuccess,
			Title:    "Order Placed Successfully!",
			Message:  fmt.Sprintf("Order %s has been confirmed", order.Number()),
			Duration: ConfirmationToastDuration,
		})
	}

	if i.tracking != nil {
		if err := i.tracking.Register(ctx, TrackingRecord(order)); err != nil {
			i.logger.WarnContext(ctx, "failed to register order for tracking",
				slog.String("order_number", order.Number()), slog.Any("error", err))
		}
	}

	i.logger.InfoContext(ctx, "order placed",
		slog.String("order_number", order.Number()),
		slog.String("device_id", req.DeviceID),
		slog.String("total", order.Totals().Total.String()))

	return &Response{Confirmation: confirmation}, nil
}

func (i *Interactor) abort(ctx context.Context, deviceID string) {
	_ = i.workflows.Update(context.WithoutCancel(ctx), deviceID, func(w *domain.Workflow) error {
		if w.Processing() {
			w.AbortPlacement()
		}
		return nil
	})
}

// TrackingRecord is the processing-state tracking entry for a new order.
func TrackingRecord(order *domain.Order) *tracking.TrackedOrder {
	d := order.Delivery()
	t := order.Totals()

	items := make([]tracking.Item, 0, len(order.Lines()))
	for _, l := range order.Lines() {
		items = append(items, tracking.Item{
			ID:       l.ProductID,
			Name:     l.Name,
			Image:    l.Image,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}

	return &tracking.TrackedOrder{
		OrderNumber:       order.Number(),
		Status:            tracking.StatusProcessing,
		OrderDate:         order.CreatedAt(),
		EstimatedDelivery: order.EstimatedDelivery(),
		Items:             items,
		Subtotal:          t.Subtotal,
		Shipping:          t.Shipping,
		Tax:               money.Zero(),
		Total:             t.Total,
		ShippingAddress: tracking.Address{
			Name:    d.FullName(),
			Address: d.Address,
			City:    d.City,
			State:   d.State,
			ZipCode: d.ZipCode,
			Phone:   d.Phone,
		},
		PaymentMethod: order.Payment().Describe(),
		Events:        tracking.NewTimeline(order.CreatedAt()),
	}
}
