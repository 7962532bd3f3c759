package models

import "time"

// Order is a cached order row; ProductIDs is the sole signal used for
// co-occurrence and purchase-frequency analysis.
type Order struct {
	ID         uint   `json:"-" gorm:"primary_key"`
	StoreID    string `json:"store_id" gorm:"column:store_id;not null;uniqueIndex:idx_store_order"`
	OrderID    string `json:"order_id" gorm:"column:order_id;not null;uniqueIndex:idx_store_order"`
	ProductIDs IDList `json:"product_ids" gorm:"column:product_ids;type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
