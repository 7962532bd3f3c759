package models

import "time"

// Product is a cached catalog row. ProductID is the merchant-assigned id,
// unique within a store; the surrogate ID only exists for gorm.
type Product struct {
	ID        uint   `json:"-" gorm:"primary_key"`
	StoreID   string `json:"store_id" gorm:"column:store_id;not null;uniqueIndex:idx_store_product"`
	ProductID string `json:"product_id" gorm:"column:product_id;not null;uniqueIndex:idx_store_product"`
	Name      string `json:"name"`
	// Price of zero means "unpriced"; such products never qualify for the
	// price-based fallback tiers.
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	ImageURL string  `json:"image_url" gorm:"column:image_url"`

	CategoryIDs IDList `json:"category_ids" gorm:"column:category_ids;type:text"`

	// Derived, overwritten on every recommendation run.
	CrossSells IDList `json:"cross_sells" gorm:"column:cross_sells;type:text"`
	Upsells    IDList `json:"upsells" gorm:"column:upsells;type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// InStock reports whether the product may be selected as a recommendation
// target.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Priced reports whether the product carries a usable price.
func (p *Product) Priced() bool {
	return p.Price > 0
}
