// Package kafka publishes post lifecycle events to a Kafka topic. Events are
// fire-and-forget from the engine's point of view: a publish failure is
// logged by the caller and never undoes the committed transition.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sharebite/internal/core/ports"

	"github.com/IBM/sarama"
)

// Notifier sends lifecycle events to Kafka using a synchronous producer.
// Messages are keyed by post ID so all events of one post land on the same
// partition in order.
type Notifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewNotifier creates a Kafka-backed notifier publishing to topic.
func NewNotifier(brokers []string, topic string, logger *slog.Logger) (*Notifier, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &Notifier{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka-notifier"),
	}, nil
}

// Notify publishes the event as JSON.
func (n *Notifier) Notify(_ context.Context, event ports.LifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(event.PostID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := n.producer.SendMessage(msg)
	if err != nil {
		n.logger.Error("failed to publish lifecycle event",
			"postId", event.PostID, "transition", event.Transition, "error", err)
		return err
	}

	n.logger.Debug("lifecycle event published",
		"postId", event.PostID, "transition", event.Transition,
		"partition", partition, "offset", offset)
	return nil
}

// Close shuts down the underlying producer.
func (n *Notifier) Close() error {
	return n.producer.Close()
}
