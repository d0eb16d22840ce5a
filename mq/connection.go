package mq

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/yeremiapane/bill-printing-app/utils"
)

const (
	ExchangeName = "orders"
	ExchangeType = "topic"
)

// SetupConn dials the broker, retrying while it starts up, and declares the
// order events exchange.
func SetupConn(url string, attempts int) (*amqp.Connection, *amqp.Channel, error) {
	if attempts < 1 {
		attempts = 1
	}

	var conn *amqp.Connection
	var err error
	for i := 0; i < attempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		utils.ErrorLogger.Printf("Failed to connect to RabbitMQ (attempt %d): %v", i+1, err)
		if i < attempts-1 {
			time.Sleep(2 * time.Second)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName, // name
		ExchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return conn, ch, nil
}
