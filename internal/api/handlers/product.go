package handlers

import (
	"net/http"
	"strconv"

	"recommender/internal/logger"
	"recommender/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products *repository.ProductRepository
	logger   *logger.Logger
}

func NewProductHandler(products *repository.ProductRepository, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	storeID := c.Param("storeId")

	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	products, err := h.products.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		h.logger.Error("Failed to list products for store %s: %v", storeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	total := len(products)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products[offset:end],
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"data": product})
}
