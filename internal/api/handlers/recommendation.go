package handlers

import (
	"net/http"
	"time"

	"recommender/internal/logger"
	"recommender/internal/metrics"
	"recommender/internal/models"
	"recommender/internal/repository"
	"recommender/internal/services/recommendation"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	engine       *recommendation.Engine
	categories   *recommendation.CategoryEngine
	products     *repository.ProductRepository
	categoryRepo *repository.CategoryRepository
	logger       *logger.Logger
}

func NewRecommendationHandler(
	engine *recommendation.Engine,
	categories *recommendation.CategoryEngine,
	products *repository.ProductRepository,
	categoryRepo *repository.CategoryRepository,
	logger *logger.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		engine:       engine,
		categories:   categories,
		products:     products,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// GenerateAll runs the cross-sell/upsell batch for every product in the store.
func (h *RecommendationHandler) GenerateAll(c *gin.Context) {
	storeID := c.Param("storeId")

	start := time.Now()
	summary, err := h.engine.GenerateAllRecommendations(c.Request.Context(), storeID)
	if err != nil {
		h.logger.Error("Recommendation batch failed for store %s: %v", storeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recommendations"})
		return
	}
	metrics.RecommendationBatchRuns.Inc()
	metrics.RecommendationBatchDuration.Observe(time.Since(start).Seconds())
	metrics.RecommendationItemErrors.Add(float64(summary.Errors))

	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// GenerateAllCategories runs the category batch for the store.
func (h *RecommendationHandler) GenerateAllCategories(c *gin.Context) {
	storeID := c.Param("storeId")

	summary, err := h.categories.GenerateAllCategoryRecommendations(c.Request.Context(), storeID)
	if err != nil {
		h.logger.Error("Category batch failed for store %s: %v", storeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate category recommendations"})
		return
	}
	metrics.RecommendationItemErrors.Add(float64(summary.Errors))

	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// GenerateOne computes and stores the lists for a single product.
func (h *RecommendationHandler) GenerateOne(c *gin.Context) {
	storeID := c.Param("storeId")
	productID := c.Param("productId")

	result, err := h.engine.ComputeRecommendations(c.Request.Context(), storeID, productID)
	if err != nil {
		h.logger.Error("Failed to compute recommendations for product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// GetProduct returns the stored lists for one product, resolved to full
// product records for the storefront widget.
func (h *RecommendationHandler) GetProduct(c *gin.Context) {
	storeID := c.Param("storeId")
	productID := c.Param("productId")

	product, err := h.products.FindByID(c.Request.Context(), storeID, productID)
	if err != nil {
		h.logger.Error("Failed to fetch product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	crossSell, err := h.resolve(c, storeID, product.CrossSells)
	if err != nil {
		return
	}
	upsell, err := h.resolve(c, storeID, product.Upsells)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id": productID,
		"cross_sell": crossSell,
		"upsell":     upsell,
	})
}

// GetCategory returns the stored list for one category (or "default"),
// resolved to full product records.
func (h *RecommendationHandler) GetCategory(c *gin.Context) {
	storeID := c.Param("storeId")
	categoryID := c.Param("categoryId")

	category, err := h.categoryRepo.FindByID(c.Request.Context(), storeID, categoryID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	products, err := h.resolve(c, storeID, category.RecommendedProducts)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category_id":          categoryID,
		"recommended_products": products,
	})
}

// resolve maps stored ids to catalog rows, preserving order and dropping ids
// that have since left the catalog. Writes the error response itself.
func (h *RecommendationHandler) resolve(c *gin.Context, storeID string, ids models.IDList) ([]models.Product, error) {
	catalog, err := h.products.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		h.logger.Error("Failed to fetch catalog for store %s: %v", storeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return nil, err
	}

	byID := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ProductID] = p
	}

	resolved := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			resolved = append(resolved, p)
		}
	}

	return resolved, nil
}
