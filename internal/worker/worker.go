package worker

import (
	"context"
	"encoding/json"
	"time"

	"recommender/internal/config"
	"recommender/internal/events"
	"recommender/internal/logger"

	"github.com/segmentio/kafka-go"
)

type Worker struct {
	config    *config.Config
	logger    *logger.Logger
	reader    *kafka.Reader
	processor *Processor
	quit      chan struct{}
}

func New(cfg *config.Config, logger *logger.Logger, processor *Processor) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{cfg.KafkaBrokers},
		GroupID:        "recommender-worker",
		Topic:          events.Topic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &Worker{
		config:    cfg,
		logger:    logger,
		reader:    reader,
		processor: processor,
		quit:      make(chan struct{}),
	}
}

func (w *Worker) Start() {
	w.logger.Info("Worker started, listening for store events...")

	go w.runScheduler()

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		message, err := w.reader.ReadMessage(ctx)
		cancel()

		if err != nil {
			select {
			case <-w.quit:
				return
			default:
			}
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		w.logger.Debug("Received message: %s", string(message.Value))

		var event events.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.logger.Error("Failed to parse event: %v", err)
			continue
		}

		if err := w.processor.Process(context.Background(), event); err != nil {
			w.logger.Error("Failed to process %s event for store %s: %v", event.Type, event.StoreID, err)
			continue
		}

		w.logger.Debug("Event processed successfully")
	}
}

// runScheduler periodically refreshes every connected store, independent of
// any events arriving on the topic.
func (w *Worker) runScheduler() {
	interval := time.Duration(w.config.SyncIntervalMinutes) * time.Minute
	if interval <= 0 {
		w.logger.Info("Periodic sync disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.logger.Info("Starting scheduled sync for all stores")
			w.processor.RunScheduled(context.Background())
		case <-w.quit:
			return
		}
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	close(w.quit)
	w.reader.Close()
}
