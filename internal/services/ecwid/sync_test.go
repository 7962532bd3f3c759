package ecwid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"recommender/internal/config"
	"recommender/internal/logger"
	"recommender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedCache struct {
	products []models.Product
	orders   []models.Order
}

func (c *capturedCache) ReplaceAll(ctx context.Context, storeID string, products []models.Product) error {
	c.products = products
	return nil
}

type capturedOrderCache struct {
	cache *capturedCache
}

func (c capturedOrderCache) ReplaceAll(ctx context.Context, storeID string, orders []models.Order) error {
	c.cache.orders = orders
	return nil
}

// newEcwidStub serves paginated /{storeId}/products and /{storeId}/orders
// responses from fixed item sets, honouring offset and limit.
func newEcwidStub(t *testing.T, products []Product, orders []Order) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-1" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		switch r.URL.Path {
		case "/42/products":
			end := offset + limit
			if end > len(products) {
				end = len(products)
			}
			page := products[offset:end]
			json.NewEncoder(w).Encode(ProductsResponse{
				Total: len(products), Count: len(page), Offset: offset, Limit: limit, Items: page,
			})
		case "/42/orders":
			end := offset + limit
			if end > len(orders) {
				end = len(orders)
			}
			page := orders[offset:end]
			json.NewEncoder(w).Encode(OrdersResponse{
				Total: len(orders), Count: len(page), Offset: offset, Limit: limit, Items: page,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestSyncStoreReplacesCacheWholesale(t *testing.T) {
	// More products than one page to force pagination
	var products []Product
	for i := 1; i <= 150; i++ {
		products = append(products, Product{
			ID:          int64(i),
			Name:        "P" + strconv.Itoa(i),
			Price:       float64(i),
			Quantity:    3,
			InStock:     true,
			CategoryIDs: []int64{1},
		})
	}
	orders := []Order{
		{OrderNumber: 1, Items: []OrderItem{{ProductID: 1}, {ProductID: 2}}},
		{OrderNumber: 2, Items: []OrderItem{{ProductID: 2}}},
	}

	server := newEcwidStub(t, products, orders)
	defer server.Close()

	cache := &capturedCache{}
	cfg := &config.Config{EcwidAPIBase: server.URL}
	sync := NewSyncService(cfg, cache, capturedOrderCache{cache}, logger.New("error"))

	store := &models.Store{StoreID: "42", AccessToken: "token-1"}
	summary, err := sync.SyncStore(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, 150, summary.Products)
	assert.Equal(t, 2, summary.Orders)
	assert.Len(t, cache.products, 150)
	assert.Len(t, cache.orders, 2)

	assert.Equal(t, "1", cache.products[0].ProductID)
	assert.Equal(t, models.IDList{"1", "2"}, cache.orders[0].ProductIDs)
}

func TestSyncStoreFailsOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cache := &capturedCache{}
	cfg := &config.Config{EcwidAPIBase: server.URL}
	sync := NewSyncService(cfg, cache, capturedOrderCache{cache}, logger.New("error"))

	store := &models.Store{StoreID: "42", AccessToken: "token-1"}
	_, err := sync.SyncStore(context.Background(), store)
	require.Error(t, err)
	assert.Empty(t, cache.products)
}
