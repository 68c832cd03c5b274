package storage

import (
	"context"
	"encoding/json"

	"localbistro/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaHandoffPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaHandoffPublisher(writer *kafka.Writer) *KafkaHandoffPublisher {
	return &KafkaHandoffPublisher{Writer: writer}
}

func (p *KafkaHandoffPublisher) Publish(ctx context.Context, event domain.HandoffEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Type),
		Value: payload,
	})
}
