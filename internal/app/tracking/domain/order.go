package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// NormalizeOrderNumber trims and uppercases a user-entered order number.
func NormalizeOrderNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Item is one purchased product on a tracked order.
type Item struct {
	ID       string
	Name     string
	Image    string
	Price    money.Money
	Quantity int
	Category string
}

// Address is where a tracked order ships to.
type Address struct {
	Name    string
	Address string
	City    string
	State   string
	ZipCode string
	Phone   string
}

// Event is one step of the tracking timeline. Pending events may have a zero
// Timestamp.
type Event struct {
	ID          string
	Status      string
	Description string
	Timestamp   time.Time
	Location    string
	Completed   bool
}

// TrackedOrder is the full detail shown for an order lookup.
type TrackedOrder struct {
	OrderNumber       string
	Status            Status
	OrderDate         time.Time
	EstimatedDelivery time.Time
	ActualDelivery    time.Time
	Items             []Item
	Subtotal          money.Money
	Shipping          money.Money
	Tax               money.Money
	Total             money.Money
	ShippingAddress   Address
	PaymentMethod     string
	Carrier           string
	TrackingNumber    string
	Events            []Event
}

// Delivered reports whether an actual delivery date is known.
func (o *TrackedOrder) Delivered() bool {
	return !o.ActualDelivery.IsZero()
}

// CompletedEvents returns the number of completed timeline events.
func (o *TrackedOrder) CompletedEvents() int {
	n := 0
	for _, e := range o.Events {
		if e.Completed {
			n++
		}
	}
	return n
}

// Validate checks the order number, status and timeline. Completed events
// must form a prefix of the timeline with non-decreasing timestamps.
func (o *TrackedOrder) Validate() error {
	if NormalizeOrderNumber(o.OrderNumber) == "" {
		return ErrEmptyOrderNumber
	}
	if _, err := ParseStatus(string(o.Status)); err != nil {
		return err
	}
	return validateTimeline(o.Events)
}

func validateTimeline(events []Event) error {
	pending := false
	var last time.Time
	for i, e := range events {
		if !e.Completed {
			pending = true
			continue
		}
		if pending {
			return fmt.Errorf("%w: event %d", ErrTimelineNotPrefix, i)
		}
		if e.Timestamp.IsZero() {
			return fmt.Errorf("%w: event %d", ErrMissingTimestamp, i)
		}
		if e.Timestamp.Before(last) {
			return fmt.Errorf("%w: event %d", ErrTimelineOrder, i)
		}
		last = e.Timestamp
	}
	return nil
}

// Clone returns a deep copy.
func (o *TrackedOrder) Clone() *TrackedOrder {
	c := *o
	c.Items = append([]Item(nil), o.Items...)
	c.Events = append([]Event(nil), o.Events...)
	return &c
}
