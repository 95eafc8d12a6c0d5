// Package events announces storefront happenings to external consumers, such
// as a fulfillment system listening on a message broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shopwave/storefront-api/internal/model"
)

const orderQueueName = "orders.placed"

// Publisher emits an event when an order is placed. Implementations must be
// safe for concurrent use.
type Publisher interface {
	OrderPlaced(ctx context.Context, msg model.OrderMessage) error
}

type amqpPublisher struct {
	channel *amqp.Channel
}

// NewAMQPPublisher declares the order queue and returns a publisher bound to
// it. The queue is durable so placed orders survive broker restarts.
func NewAMQPPublisher(ch *amqp.Channel) (Publisher, error) {
	if _, err := ch.QueueDeclare(orderQueueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare order queue: %w", err)
	}
	return &amqpPublisher{channel: ch}, nil
}

func (p *amqpPublisher) OrderPlaced(ctx context.Context, msg model.OrderMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode order message: %w", err)
	}
	err = p.channel.PublishWithContext(ctx, "", orderQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return fmt.Errorf("publish order message: %w", err)
	}
	return nil
}
