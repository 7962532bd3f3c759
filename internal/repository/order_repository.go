package repository

import (
	"context"
	"fmt"

	"recommender/internal/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{
		DB: db,
	}
}

func (r *OrderRepository) ListByStore(ctx context.Context, storeID string) ([]models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []models.Order
	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Order("id").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

// ReplaceAll swaps the store's cached order history wholesale.
func (r *OrderRepository) ReplaceAll(ctx context.Context, storeID string, orders []models.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", storeID).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("failed to clear orders: %w", err)
		}
		for i := range orders {
			orders[i].ID = 0
			orders[i].StoreID = storeID
			if err := tx.Create(&orders[i]).Error; err != nil {
				return fmt.Errorf("failed to insert order %s: %w", orders[i].OrderID, err)
			}
		}
		return nil
	})
}
