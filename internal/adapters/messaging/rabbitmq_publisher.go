package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// EventTransactionRecorded is the type of every message this package publishes.
	EventTransactionRecorded = "transaction.recorded"
	routingKeyPrefix         = "ledger.transaction."
	publishTimeout           = 5 * time.Second
)

// TransactionRecordedEvent is the JSON body of a published message.
type TransactionRecordedEvent struct {
	EventID     string             `json:"eventID"`
	EventType   string             `json:"eventType"`
	OccurredAt  time.Time          `json:"occurredAt"`
	Transaction domain.Transaction `json:"transaction"`
}

// RoutingKey returns the key a transaction is published under,
// e.g. ledger.transaction.transfer.
func RoutingKey(tx domain.Transaction) string {
	return routingKeyPrefix + strings.ToLower(string(tx.Type))
}

// amqpChannel is the part of *amqp.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes transaction events to a topic exchange.
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

var _ portssvc.TransactionEventPublisher = (*RabbitMQPublisher)(nil)

// NewRabbitMQPublisher connects to the broker and declares a durable topic exchange.
func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	slog.Info("RabbitMQ publisher initialized", slog.String("exchange", exchange))
	return &RabbitMQPublisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *RabbitMQPublisher) PublishTransactionRecorded(ctx context.Context, transaction domain.Transaction) error {
	event := TransactionRecordedEvent{
		EventID:     uuid.NewString(),
		EventType:   EventTransactionRecorded,
		OccurredAt:  time.Now().UTC(),
		Transaction: transaction,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	key := RoutingKey(transaction)
	err = p.channel.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Type:         EventTransactionRecorded,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Transaction event published",
		slog.String("routing_key", key),
		slog.String("transaction_id", transaction.TransactionID))
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	var firstErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			firstErr = fmt.Errorf("failed to close channel: %w", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close connection: %w", err)
		}
	}
	return firstErr
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

var _ portssvc.TransactionEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishTransactionRecorded(context.Context, domain.Transaction) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
