package domain

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// DomainEvent is the base interface for checkout events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// OrderPlacedEvent is emitted when an order is created.
type OrderPlacedEvent struct {
	OrderNumber string      `json:"orderNumber"`
	Email       string      `json:"email"`
	ItemCount   int         `json:"itemCount"`
	Total       money.Money `json:"total"`
	PaymentType PaymentType `json:"paymentType"`
	PlacedAt    time.Time   `json:"placedAt"`
}

func (e *OrderPlacedEvent) EventType() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) AggregateID() string {
	return e.OrderNumber
}
