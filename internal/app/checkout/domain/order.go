package domain

import (
	"strconv"
	"time"

	selection "github.com/light-bringer/storefront-service/internal/app/selection/domain"
)

// DeliveryWindow is added to the creation time to estimate delivery.
const DeliveryWindow = 7 * 24 * time.Hour

// OrderNumber derives an order number from t.
func OrderNumber(t time.Time) string {
	return "ORD-" + strconv.FormatInt(t.UnixMilli(), 10)
}

// Order is an immutable record of a placed checkout.
type Order struct {
	number            string
	lines             []selection.CartLine
	delivery          DeliveryDetails
	payment           PaymentMethod
	coupon            *Coupon
	totals            Totals
	createdAt         time.Time
	estimatedDelivery time.Time

	events []DomainEvent
}

// NewOrder snapshots lines and prices them with coupon.
func NewOrder(now time.Time, lines []selection.CartLine, delivery DeliveryDetails, payment PaymentMethod, coupon *Coupon) *Order {
	o := &Order{
		number:            OrderNumber(now),
		lines:             append([]selection.CartLine(nil), lines...),
		delivery:          delivery,
		payment:           payment,
		totals:            ComputeTotals(lines, coupon),
		createdAt:         now,
		estimatedDelivery: now.Add(DeliveryWindow),
	}
	if coupon != nil {
		c := *coupon
		o.coupon = &c
	}

	o.events = append(o.events, &OrderPlacedEvent{
		OrderNumber: o.number,
		Email:       delivery.Email,
		ItemCount:   o.totals.ItemCount,
		Total:       o.totals.Total,
		PaymentType: payment.Type(),
		PlacedAt:    now,
	})

	return o
}

func (o *Order) Number() string               { return o.number }
func (o *Order) Delivery() DeliveryDetails    { return o.delivery }
func (o *Order) Payment() PaymentMethod       { return o.payment }
func (o *Order) Totals() Totals               { return o.totals }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) EstimatedDelivery() time.Time { return o.estimatedDelivery }
func (o *Order) DomainEvents() []DomainEvent  { return o.events }

func (o *Order) Lines() []selection.CartLine {
	return append([]selection.CartLine(nil), o.lines...)
}

// Coupon returns the applied coupon, if any.
func (o *Order) Coupon() (Coupon, bool) {
	if o.coupon == nil {
		return Coupon{}, false
	}
	return *o.coupon, true
}
