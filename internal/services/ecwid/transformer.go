package ecwid

import (
	"strconv"

	"recommender/internal/models"
)

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// TransformProduct maps an Ecwid product onto the cached catalog row.
func (t *Transformer) TransformProduct(storeID string, p *Product) models.Product {
	categoryIDs := make(models.IDList, 0, len(p.CategoryIDs))
	for _, id := range p.CategoryIDs {
		categoryIDs = append(categoryIDs, strconv.FormatInt(id, 10))
	}

	stock := p.Quantity
	if p.Unlimited && stock == 0 {
		// Unlimited-stock products report quantity 0 but are sellable
		stock = 1
	}
	if !p.InStock {
		stock = 0
	}

	return models.Product{
		StoreID:     storeID,
		ProductID:   strconv.FormatInt(p.ID, 10),
		Name:        p.Name,
		Price:       p.Price,
		Stock:       stock,
		ImageURL:    p.ImageURL,
		CategoryIDs: categoryIDs,
		CrossSells:  models.IDList{},
		Upsells:     models.IDList{},
	}
}

// TransformOrder maps an Ecwid order onto the cached order row, keeping only
// the purchased product ids.
func (t *Transformer) TransformOrder(storeID string, o *Order) models.Order {
	productIDs := make(models.IDList, 0, len(o.Items))
	for _, item := range o.Items {
		productIDs = append(productIDs, strconv.FormatInt(item.ProductID, 10))
	}

	orderID := o.ID
	if orderID == "" {
		orderID = strconv.FormatInt(o.OrderNumber, 10)
	}

	return models.Order{
		StoreID:    storeID,
		OrderID:    orderID,
		ProductIDs: productIDs,
	}
}
