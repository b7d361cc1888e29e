package domain

import (
	"strconv"
	"time"
)

// Standard timeline steps, in order.
const (
	StepOrderPlaced    = "Order Placed"
	StepProcessing     = "Processing"
	StepShipped        = "Shipped"
	StepInTransit      = "In Transit"
	StepOutForDelivery = "Out for Delivery"
	StepDelivered      = "Delivered"
)

var standardSteps = []struct {
	status      string
	description string
	location    string
}{
	{StepOrderPlaced, "Your order has been successfully placed and is being processed.", "Online"},
	{StepProcessing, "Your order is being prepared for shipment.", "Warehouse"},
	{StepShipped, "Your order has been shipped and is on its way.", "Carrier Facility"},
	{StepInTransit, "Package is currently in transit to your delivery address.", "Carrier Facility"},
	{StepOutForDelivery, "Package is out for delivery and will arrive today.", "Local Delivery Facility"},
	{StepDelivered, "Package has been delivered successfully.", "Your Address"},
}

// NewTimeline returns the six standard events with only "Order Placed"
// completed at placedAt.
func NewTimeline(placedAt time.Time) []Event {
	events := make([]Event, 0, len(standardSteps))
	for i, s := range standardSteps {
		e := Event{
			ID:          strconv.Itoa(i + 1),
			Status:      s.status,
			Description: s.description,
			Location:    s.location,
		}
		if i == 0 {
			e.Timestamp = placedAt
			e.Completed = true
		}
		events = append(events, e)
	}
	return events
}
