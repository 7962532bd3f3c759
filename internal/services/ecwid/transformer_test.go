package ecwid

import (
	"testing"

	"recommender/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTransformProduct(t *testing.T) {
	transformer := NewTransformer()

	p := Product{
		ID:          123,
		Name:        "Widget",
		Price:       19.99,
		Quantity:    7,
		InStock:     true,
		ImageURL:    "https://cdn.example.com/widget.jpg",
		CategoryIDs: []int64{1, 21},
	}

	got := transformer.TransformProduct("store-1", &p)

	assert.Equal(t, "store-1", got.StoreID)
	assert.Equal(t, "123", got.ProductID)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 19.99, got.Price)
	assert.Equal(t, 7, got.Stock)
	assert.Equal(t, models.IDList{"1", "21"}, got.CategoryIDs)
	assert.Empty(t, got.CrossSells)
	assert.Empty(t, got.Upsells)
}

func TestTransformProduct_UnlimitedStockIsSellable(t *testing.T) {
	transformer := NewTransformer()

	p := Product{ID: 1, Quantity: 0, Unlimited: true, InStock: true}
	got := transformer.TransformProduct("store-1", &p)

	assert.Greater(t, got.Stock, 0)
}

func TestTransformProduct_OutOfStockForcesZero(t *testing.T) {
	transformer := NewTransformer()

	p := Product{ID: 1, Quantity: 5, InStock: false}
	got := transformer.TransformProduct("store-1", &p)

	assert.Equal(t, 0, got.Stock)
}

func TestTransformOrder(t *testing.T) {
	transformer := NewTransformer()

	o := Order{
		ID:          "XJ12K",
		OrderNumber: 17,
		Items: []OrderItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 21, Quantity: 1},
		},
	}

	got := transformer.TransformOrder("store-1", &o)

	assert.Equal(t, "XJ12K", got.OrderID)
	assert.Equal(t, models.IDList{"1", "21"}, got.ProductIDs)
}

func TestTransformOrder_FallsBackToOrderNumber(t *testing.T) {
	transformer := NewTransformer()

	o := Order{OrderNumber: 17}
	got := transformer.TransformOrder("store-1", &o)

	assert.Equal(t, "17", got.OrderID)
}
