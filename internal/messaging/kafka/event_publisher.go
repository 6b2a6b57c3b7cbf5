package kafka

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the subset of *kafkago.Writer used for publishing.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

//go:generate mockgen -source=event_publisher.go -destination=mock/event_publisher_mock.go -package=mock
type EventPublisher interface {
	Publish(ctx context.Context, topic, key, eventType string, event any) error
}

type noopEventPublisher struct{}

func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, string, string, string, any) error {
	return nil
}

type writerEventPublisher struct {
	writer MessageWriter
	logger *zap.Logger
}

func NewEventPublisher(writer MessageWriter, logger ...*zap.Logger) EventPublisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}
	return &writerEventPublisher{writer: writer, logger: l}
}

func (p *writerEventPublisher) Publish(ctx context.Context, topic, key, eventType string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal event failed",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}

	if err := p.writer.WriteMessages(ctx, BuildMessage(topic, key, eventType, payload)); err != nil {
		p.logger.Error("publish event failed",
			zap.String("topic", topic),
			zap.String("key", key),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug("event published",
		zap.String("topic", topic),
		zap.String("key", key),
		zap.String("event_type", eventType),
	)
	return nil
}

// BuildMessage keys messages by aggregate so one employee's events stay on
// one partition.
func BuildMessage(topic, key, eventType string, payload []byte) kafkago.Message {
	return kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "content_type", Value: []byte("application/json")},
		},
	}
}
