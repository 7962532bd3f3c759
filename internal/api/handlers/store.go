package handlers

import (
	"net/http"
	"time"

	"recommender/internal/events"
	"recommender/internal/logger"
	"recommender/internal/metrics"
	"recommender/internal/repository"
	"recommender/internal/services/ecwid"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	stores    *repository.StoreRepository
	sync      *ecwid.SyncService
	publisher *events.Publisher
	logger    *logger.Logger
}

func NewStoreHandler(stores *repository.StoreRepository, sync *ecwid.SyncService, publisher *events.Publisher, logger *logger.Logger) *StoreHandler {
	return &StoreHandler{
		stores:    stores,
		sync:      sync,
		publisher: publisher,
		logger:    logger,
	}
}

func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.stores.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list stores: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stores})
}

func (h *StoreHandler) Get(c *gin.Context) {
	storeID := c.Param("storeId")

	store, err := h.stores.FindByID(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": store})
}

// Sync refreshes the store's cached catalog and order history inline, then
// announces completion so the worker recomputes recommendations.
func (h *StoreHandler) Sync(c *gin.Context) {
	storeID := c.Param("storeId")

	store, err := h.stores.FindByID(c.Request.Context(), storeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	start := time.Now()
	summary, err := h.sync.SyncStore(c.Request.Context(), store)
	if err != nil {
		h.logger.Error("Failed to sync store %s: %v", storeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync store"})
		return
	}
	metrics.SyncRuns.Inc()
	metrics.SyncDuration.Observe(time.Since(start).Seconds())

	if err := h.publisher.Publish(c.Request.Context(), events.TypeStoreSynced, storeID); err != nil {
		h.logger.Error("Failed to publish store.synced for %s: %v", storeID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store synced successfully",
		"data":    summary,
	})
}

func (h *StoreHandler) Delete(c *gin.Context) {
	storeID := c.Param("storeId")

	if err := h.stores.Delete(c.Request.Context(), storeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
