package repository

import (
	"context"
	"errors"
	"fmt"

	"recommender/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		DB: db,
	}
}

// UpsertRecommendations overwrites the derived product list for one category,
// creating the row on first run.
func (r *CategoryRepository) UpsertRecommendations(ctx context.Context, storeID, categoryID string, productIDs models.IDList) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	category := models.Category{
		StoreID:             storeID,
		CategoryID:          categoryID,
		RecommendedProducts: productIDs,
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}, {Name: "category_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"recommended_products", "updated_at"}),
	}).Create(&category).Error
	if err != nil {
		return fmt.Errorf("failed to upsert category recommendations: %w", err)
	}

	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, storeID, categoryID string) (*models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var category models.Category
	err := r.DB.WithContext(ctx).
		Where("store_id = ? AND category_id = ?", storeID, categoryID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepository) ListByStore(ctx context.Context, storeID string) ([]models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var categories []models.Category
	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Order("id").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}

	return categories, nil
}
