package outbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/segmentio/kafka-go"
)

// HeaderEventType carries the event type on every published message.
const HeaderEventType = "event_type"

// kafkaMessageWriter abstracts kafka.Writer for testability.
type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes outbox events to one topic, keyed by aggregate id so the events
// of one schema stay ordered within a partition.
type KafkaPublisher struct {
	writer kafkaMessageWriter
}

// NewKafkaPublisher creates a synchronous writer that waits for all in-sync replicas.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}}
}

// NewKafkaPublisherWith is only for tests to inject a fake writer.
func NewKafkaPublisherWith(w kafkaMessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events []Event) error {
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.AggregateID),
			Value: []byte(e.Payload),
			Headers: []kafka.Header{
				{Key: HeaderEventType, Value: []byte(e.EventType)},
				{Key: "event_id", Value: []byte(e.EventID)},
			},
			Time: e.CreatedAt,
		})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka write %d messages: %w", len(msgs), err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Describe returns a short human description of where events go, for startup logs.
func Describe(brokers []string, topic string) string {
	return fmt.Sprintf("%s@%s", topic, strings.Join(brokers, ","))
}
