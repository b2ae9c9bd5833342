// Package amqp publishes revenue entry lifecycle events to RabbitMQ.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	portssvc "github.com/danilosilva441/projeto-faturamento/internal/core/ports/services"
	"github.com/danilosilva441/projeto-faturamento/internal/middleware"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

var eventTypes = []domain.RevenueEventType{
	domain.RevenueEntryCreated,
	domain.RevenueEntryUpdated,
	domain.RevenueEntryCancelled,
}

// publishChannel is the part of *amqp091.Channel the publisher needs.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends each RevenueEvent to a durable direct exchange, routed by event type.
type Publisher struct {
	conn         *amqp091.Connection
	mu           sync.Mutex
	channel      publishChannel
	exchangeName string
}

var _ portssvc.EventPublisher = (*Publisher)(nil)

// NewPublisher dials url and declares the exchange plus a durable queue bound
// to every revenue event type.
func NewPublisher(url, exchangeName, queueName string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := setup(channel, exchangeName, queueName); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	p := newPublisher(channel, exchangeName)
	p.conn = conn
	return p, nil
}

func newPublisher(channel publishChannel, exchangeName string) *Publisher {
	return &Publisher{channel: channel, exchangeName: exchangeName}
}

func setup(channel *amqp091.Channel, exchangeName, queueName string) error {
	err := channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if queueName == "" {
		return nil
	}

	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	for _, eventType := range eventTypes {
		if err := channel.QueueBind(queueName, string(eventType), exchangeName, false, nil); err != nil {
			return fmt.Errorf("bind queue to %s: %w", eventType, err)
		}
	}
	return nil
}

// PublishRevenueEvent publishes event as a persistent JSON message.
func (p *Publisher) PublishRevenueEvent(ctx context.Context, event domain.RevenueEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal revenue event: %w", err)
	}

	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.EventID,
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
	}
	if id, ok := middleware.RequestIDFromCtx(ctx); ok {
		msg.CorrelationId = id
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, p.exchangeName, string(event.Type), false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish revenue event: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Published revenue event",
		slog.String("event_type", string(event.Type)),
		slog.Int64("entry_id", event.EntryID),
		slog.String("exchange", p.exchangeName))
	return nil
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
