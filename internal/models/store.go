package models

import "time"

// Store is one connected merchant, created by the OAuth callback.
type Store struct {
	StoreID     string    `json:"store_id" gorm:"column:store_id;primary_key"`
	AccessToken string    `json:"-" gorm:"column:access_token;not null"`
	StoreURL    string    `json:"store_url" gorm:"column:store_url"`
	Scope       string    `json:"scope" gorm:"column:scope"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Store) TableName() string {
	return "stores"
}
