package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/yeremiapane/bill-printing-app/models"
)

// Publisher sends order events to the topic exchange.
type Publisher struct {
	ch *amqp.Channel
	mu sync.Mutex
}

func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// RoutingKey is order.<event type>, e.g. order.payment_added.
func RoutingKey(event models.OrderEvent) string {
	return "order." + event.Type
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, event models.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal order event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx,
		ExchangeName,      // exchange
		RoutingKey(event), // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.OrderID + ":" + event.Type,
			Timestamp:    event.At,
			Body:         body,
		},
	)
}
