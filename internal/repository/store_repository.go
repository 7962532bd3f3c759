package repository

import (
	"context"
	"errors"
	"fmt"

	"recommender/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{
		DB: db,
	}
}

// Upsert inserts or replaces the store row keyed by store id. Re-installing
// the app rotates the access token in place.
func (r *StoreRepository) Upsert(ctx context.Context, store *models.Store) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "store_url", "scope", "updated_at"}),
	}).Create(store).Error
	if err != nil {
		return fmt.Errorf("failed to upsert store: %w", err)
	}

	return nil
}

func (r *StoreRepository) FindByID(ctx context.Context, storeID string) (*models.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var store models.Store
	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("store not found")
		}
		return nil, fmt.Errorf("failed to find store: %w", err)
	}

	return &store, nil
}

func (r *StoreRepository) FindAll(ctx context.Context) ([]models.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var stores []models.Store
	if err := r.DB.WithContext(ctx).Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to find stores: %w", err)
	}

	return stores, nil
}

func (r *StoreRepository) Delete(ctx context.Context, storeID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Delete(&models.Store{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete store: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("store not found or already deleted")
	}

	return nil
}
