package worker

import (
	"context"
	"fmt"
	"time"

	"recommender/internal/events"
	"recommender/internal/logger"
	"recommender/internal/metrics"
	"recommender/internal/models"
	"recommender/internal/repository"
	"recommender/internal/services/ecwid"
	"recommender/internal/services/recommendation"
)

// Processor reacts to store lifecycle events: a sync request refreshes the
// cache and announces completion, a completed sync triggers the
// recommendation batches.
type Processor struct {
	stores     *repository.StoreRepository
	sync       *ecwid.SyncService
	engine     *recommendation.Engine
	categories *recommendation.CategoryEngine
	publisher  *events.Publisher
	logger     *logger.Logger
}

func NewProcessor(
	stores *repository.StoreRepository,
	sync *ecwid.SyncService,
	engine *recommendation.Engine,
	categories *recommendation.CategoryEngine,
	publisher *events.Publisher,
	logger *logger.Logger,
) *Processor {
	return &Processor{
		stores:     stores,
		sync:       sync,
		engine:     engine,
		categories: categories,
		publisher:  publisher,
		logger:     logger,
	}
}

func (p *Processor) Process(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.TypeStoreConnected, events.TypeSyncRequested:
		return p.syncStore(ctx, event.StoreID)
	case events.TypeStoreSynced:
		return p.generateRecommendations(ctx, event.StoreID)
	default:
		p.logger.Debug("Ignoring event type %s", event.Type)
		return nil
	}
}

func (p *Processor) syncStore(ctx context.Context, storeID string) error {
	store, err := p.stores.FindByID(ctx, storeID)
	if err != nil {
		return fmt.Errorf("failed to load store %s: %w", storeID, err)
	}

	start := time.Now()
	if _, err := p.sync.SyncStore(ctx, store); err != nil {
		return fmt.Errorf("failed to sync store %s: %w", storeID, err)
	}
	metrics.SyncRuns.Inc()
	metrics.SyncDuration.Observe(time.Since(start).Seconds())

	if err := p.publisher.Publish(ctx, events.TypeStoreSynced, storeID); err != nil {
		// The sync itself succeeded; the batch can still be triggered
		// manually, so log and move on
		p.logger.Error("Failed to publish store.synced for %s: %v", storeID, err)
	}

	return nil
}

func (p *Processor) generateRecommendations(ctx context.Context, storeID string) error {
	start := time.Now()

	summary, err := p.engine.GenerateAllRecommendations(ctx, storeID)
	if err != nil {
		return fmt.Errorf("product recommendation batch failed for store %s: %w", storeID, err)
	}
	metrics.RecommendationItemErrors.Add(float64(summary.Errors))

	categorySummary, err := p.categories.GenerateAllCategoryRecommendations(ctx, storeID)
	if err != nil {
		return fmt.Errorf("category recommendation batch failed for store %s: %w", storeID, err)
	}
	metrics.RecommendationItemErrors.Add(float64(categorySummary.Errors))

	metrics.RecommendationBatchRuns.Inc()
	metrics.RecommendationBatchDuration.Observe(time.Since(start).Seconds())

	return nil
}

// RunScheduled refreshes every connected store and recomputes its
// recommendations, used by the periodic ticker. Per-store failures are logged
// and the loop continues.
func (p *Processor) RunScheduled(ctx context.Context) {
	stores, err := p.stores.FindAll(ctx)
	if err != nil {
		p.logger.Error("Scheduled run failed to list stores: %v", err)
		return
	}

	for i := range stores {
		p.runStore(ctx, &stores[i])
	}
}

func (p *Processor) runStore(ctx context.Context, store *models.Store) {
	if err := p.syncStore(ctx, store.StoreID); err != nil {
		p.logger.Error("Scheduled sync failed for store %s: %v", store.StoreID, err)
		return
	}
	if err := p.generateRecommendations(ctx, store.StoreID); err != nil {
		p.logger.Error("Scheduled recommendation run failed for store %s: %v", store.StoreID, err)
	}
}
