package models

import "time"

// DefaultCategoryID is the sentinel for the store-wide pseudo-category.
const DefaultCategoryID = "default"

// Category holds the derived per-category recommendation list. Rows are
// recomputed wholesale from the current product set on every batch run.
type Category struct {
	ID         uint   `json:"-" gorm:"primary_key"`
	StoreID    string `json:"store_id" gorm:"column:store_id;not null;uniqueIndex:idx_store_category"`
	CategoryID string `json:"category_id" gorm:"column:category_id;not null;uniqueIndex:idx_store_category"`

	RecommendedProducts IDList `json:"recommended_products" gorm:"column:recommended_products;type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
