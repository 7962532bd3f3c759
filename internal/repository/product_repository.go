package repository

import (
	"context"
	"errors"
	"fmt"

	"recommender/internal/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) ListByStore(ctx context.Context, storeID string) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []models.Product
	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Order("id").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

// FindByID returns nil (not an error) when the product is absent from the
// cache, so callers can treat a missing source product as a skip.
func (r *ProductRepository) FindByID(ctx context.Context, storeID, productID string) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var product models.Product
	err := r.DB.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

// ReplaceAll swaps the store's cached catalog wholesale: delete-all then
// insert, matching how the sync feeds the cache.
func (r *ProductRepository) ReplaceAll(ctx context.Context, storeID string, products []models.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", storeID).Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}
		for i := range products {
			products[i].ID = 0
			products[i].StoreID = storeID
			if err := tx.Create(&products[i]).Error; err != nil {
				return fmt.Errorf("failed to insert product %s: %w", products[i].ProductID, err)
			}
		}
		return nil
	})
}

// SaveRecommendations overwrites the derived cross-sell/upsell lists on the
// product row. Per-row autocommit; the batch deliberately runs without an
// enclosing transaction so a retry just recomputes everything.
func (r *ProductRepository) SaveRecommendations(ctx context.Context, storeID, productID string, crossSells, upsells models.IDList) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	crossValue, err := crossSells.Value()
	if err != nil {
		return fmt.Errorf("failed to encode cross-sells: %w", err)
	}
	upValue, err := upsells.Value()
	if err != nil {
		return fmt.Errorf("failed to encode upsells: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Updates(map[string]interface{}{
			"cross_sells": crossValue,
			"upsells":     upValue,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to save recommendations: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found")
	}

	return nil
}
