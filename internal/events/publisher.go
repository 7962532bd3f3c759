package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"recommender/internal/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const Topic = "store-events"

// Event types carried on the store-events topic.
const (
	TypeStoreConnected = "store.connected"
	TypeSyncRequested  = "sync.requested"
	TypeStoreSynced    = "store.synced"
)

type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	StoreID   string    `json:"store_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher emits store lifecycle events; the worker reacts to them.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(brokers string, logger *logger.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
	}

	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

func (p *Publisher) Publish(ctx context.Context, eventType, storeID string) error {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		StoreID:   storeID,
		Timestamp: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(storeID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	p.logger.Debug("Published %s event for store %s", eventType, storeID)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
