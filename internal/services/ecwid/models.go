package ecwid

// Response models for the Ecwid REST API v3.

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	StoreID     int64  `json:"store_id"`
}

type Product struct {
	ID          int64   `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Unlimited   bool    `json:"unlimited"`
	InStock     bool    `json:"inStock"`
	ImageURL    string  `json:"imageUrl"`
	Enabled     bool    `json:"enabled"`
	CategoryIDs []int64 `json:"categoryIds"`
}

type ProductsResponse struct {
	Total  int       `json:"total"`
	Count  int       `json:"count"`
	Offset int       `json:"offset"`
	Limit  int       `json:"limit"`
	Items  []Product `json:"items"`
}

type OrderItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Order struct {
	OrderNumber       int64       `json:"orderNumber"`
	ID                string      `json:"id"`
	PaymentStatus     string      `json:"paymentStatus"`
	FulfillmentStatus string      `json:"fulfillmentStatus"`
	Items             []OrderItem `json:"items"`
}

type OrdersResponse struct {
	Total  int     `json:"total"`
	Count  int     `json:"count"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
	Items  []Order `json:"items"`
}

type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID int64  `json:"parentId"`
}

type CategoriesResponse struct {
	Total  int        `json:"total"`
	Count  int        `json:"count"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
	Items  []Category `json:"items"`
}

type GeneralInfo struct {
	StoreID  int64  `json:"storeId"`
	StoreURL string `json:"storeUrl"`
}

type Profile struct {
	GeneralInfo GeneralInfo `json:"generalInfo"`
}
