package events

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange = "storefront.events"
	EventVersion   = 1
	Producer       = "storefront-service"
)

// RoutingKey is the topic an event type is published under, e.g.
// "order.placed.v1".
func RoutingKey(eventType string) string {
	return fmt.Sprintf("%s.v%d", eventType, EventVersion)
}

// SchemaFor names the JSON schema of an event type's envelope.
func SchemaFor(eventType string) string {
	return "storefront/" + RoutingKey(eventType)
}

func declareEventsExchange(ch *amqp.Channel) error {
	return ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
}
