// Package kafka publishes delivery domain events to a Kafka topic.
// Publication follows the same fire-and-forget contract as the rest of the
// notification path: broker failures are logged and swallowed so messaging
// outages never fail the command that produced the event.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"glassgo/internal/core/domain/model/delivery"

	"github.com/IBM/sarama"
)

// eventEnvelope is the wire payload for a delivery domain event.
type eventEnvelope struct {
	EventID    string    `json:"event_id"`
	EventName  string    `json:"event_name"`
	OccurredAt time.Time `json:"occurred_at"`
	DeliveryID string    `json:"delivery_id"`
}

// Publisher sends delivery events to a Kafka topic via a synchronous producer.
// Implements ports.EventPublisher, so it can be subscribed on the event bus
// alongside the monitoring service.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewPublisher connects a synchronous Kafka producer to the given brokers.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}, nil
}

// Handle publishes a single domain event, satisfying ports.EventHandler.
// Errors are returned to the bus, which logs and swallows them.
func (p *Publisher) Handle(_ context.Context, event delivery.DomainEvent) error {
	payload, err := json.Marshal(eventEnvelope{
		EventID:    event.EventID().String(),
		EventName:  event.EventName(),
		OccurredAt: event.OccurredAt(),
		DeliveryID: event.DeliveryID().String(),
	})
	if err != nil {
		return err
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.DeliveryID().String()),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return err
	}

	p.logger.Debug("delivery event published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"event", event.EventName())
	return nil
}

// Close shuts down the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
