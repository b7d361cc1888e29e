// Package events publishes outbox events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/light-bringer/storefront-service/internal/app/checkout/contracts"
)

const publishTimeout = 3 * time.Second

type Publisher struct {
	ch *amqp.Channel
}

func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareEventsExchange(ch); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare %s: %w", EventsExchange, err)
	}

	return &Publisher{ch: ch}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

// Publish sends event to the events exchange under its routing key. The
// outbox event id becomes the envelope id so consumers can dedupe retries.
func (p *Publisher) Publish(ctx context.Context, event *contracts.OutboxEvent) error {
	body, err := json.Marshal(BuildEnvelope(event))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventType, err)
	}
	return p.publishJSON(ctx, RoutingKey(event.EventType), event.EventID, body)
}

// BuildEnvelope wraps a stored outbox event.
func BuildEnvelope(event *contracts.OutboxEvent) Envelope {
	return Envelope{
		EventName:     event.EventType,
		EventVersion:  EventVersion,
		EventID:       event.EventID,
		CorrelationID: event.AggregateID,
		Producer:      Producer,
		PartitionKey:  event.AggregateID,
		OccurredAt:    event.CreatedAt.UTC(),
		Schema:        SchemaFor(event.EventType),
		Payload:       json.RawMessage(event.Payload),
	}
}

func (p *Publisher) publishJSON(ctx context.Context, routingKey, messageID string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
