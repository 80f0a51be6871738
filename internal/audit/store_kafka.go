package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaStore publishes audit events to a topic. The event correlation id is
// used as the record key so events for one request land on one partition.
type KafkaStore struct {
	client *kgo.Client
	topic  string
}

func NewKafkaStore(brokers []string, topic string) (*KafkaStore, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaStore{client: client, topic: topic}, nil
}

func (s *KafkaStore) Append(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.CorrelationID),
		Value: payload,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

func (s *KafkaStore) Close() {
	s.client.Close()
}
