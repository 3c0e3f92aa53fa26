package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/blues/adagency/internal/config"
	"github.com/blues/adagency/internal/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventLeadCreated = "lead.created"
	EventLeadDigest  = "lead.digest"
)

// Event is the message body published for every notification.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

func NewEvent(typ string, payload interface{}) Event {
	return Event{Type: typ, OccurredAt: time.Now().UTC(), Payload: payload}
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// RabbitMQ publishes events to a durable topic exchange, routed by event type.
type RabbitMQ struct {
	mu         sync.Mutex
	url        string
	exchange   string
	connection *amqp.Connection
	channel    *amqp.Channel
}

func NewRabbitMQ(cfg config.RabbitMQConfig) *RabbitMQ {
	return &RabbitMQ{
		url:      cfg.URL,
		exchange: cfg.Exchange,
	}
}

func (rmq *RabbitMQ) Dial() error {
	connection, err := amqp.Dial(rmq.url)
	if err != nil {
		return fmt.Errorf("failed to dial RabbitMQ: %w", err)
	}
	channel, err := connection.Channel()
	if err != nil {
		connection.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		rmq.exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		connection.Close()
		return fmt.Errorf("failed to declare exchange %s: %w", rmq.exchange, err)
	}

	rmq.connection = connection
	rmq.channel = channel

	logger.Info("[RABBITMQ] - Connection established, exchange %s", rmq.exchange)
	return nil
}

func (rmq *RabbitMQ) Publish(ctx context.Context, evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	rmq.mu.Lock()
	defer rmq.mu.Unlock()

	if rmq.channel == nil {
		return fmt.Errorf("rabbitmq channel is not open")
	}

	return rmq.channel.PublishWithContext(ctx,
		rmq.exchange,
		evt.Type, // routing key
		false,    // mandatory
		false,    // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    evt.OccurredAt,
			Type:         evt.Type,
			Body:         body,
		},
	)
}

func (rmq *RabbitMQ) Close() error {
	rmq.mu.Lock()
	defer rmq.mu.Unlock()

	if rmq.channel != nil {
		if err := rmq.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
		rmq.channel = nil
	}
	if rmq.connection != nil {
		if err := rmq.connection.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
		rmq.connection = nil
	}
	return nil
}

// LogPublisher writes events to the application log; used when RabbitMQ is disabled.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, evt Event) error {
	logger.Info("notification %s: %+v", evt.Type, evt.Payload)
	return nil
}

func (LogPublisher) Close() error { return nil }

// NewPublisher dials RabbitMQ when enabled, otherwise returns a LogPublisher.
func NewPublisher(cfg config.RabbitMQConfig) (Publisher, error) {
	if !cfg.Enabled {
		return LogPublisher{}, nil
	}
	rmq := NewRabbitMQ(cfg)
	if err := rmq.Dial(); err != nil {
		return nil, err
	}
	return rmq, nil
}
