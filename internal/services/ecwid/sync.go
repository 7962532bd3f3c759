package ecwid

import (
	"context"
	"fmt"

	"recommender/internal/config"
	"recommender/internal/logger"
	"recommender/internal/models"
)

const syncPageSize = 100

// ProductCache contract interface
type ProductCache interface {
	ReplaceAll(ctx context.Context, storeID string, products []models.Product) error
}

// OrderCache contract interface
type OrderCache interface {
	ReplaceAll(ctx context.Context, storeID string, orders []models.Order) error
}

// SyncSummary reports one full cache refresh for a store.
type SyncSummary struct {
	StoreID  string `json:"store_id"`
	Products int    `json:"products"`
	Orders   int    `json:"orders"`
}

// SyncService refreshes the local catalog and order cache from the Ecwid API.
// Each run replaces the store's rows wholesale; recommendations are recomputed
// afterwards by the engine, not here.
type SyncService struct {
	config      *config.Config
	products    ProductCache
	orders      OrderCache
	transformer *Transformer
	logger      *logger.Logger
}

func NewSyncService(cfg *config.Config, products ProductCache, orders OrderCache, logger *logger.Logger) *SyncService {
	return &SyncService{
		config:      cfg,
		products:    products,
		orders:      orders,
		transformer: NewTransformer(),
		logger:      logger,
	}
}

// SyncStore pulls every product and order page for the store and swaps the
// cached rows.
func (s *SyncService) SyncStore(ctx context.Context, store *models.Store) (*SyncSummary, error) {
	client := NewClient(s.config.EcwidAPIBase, store.StoreID, store.AccessToken, s.logger)

	products, err := s.fetchAllProducts(client, store.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	orders, err := s.fetchAllOrders(client, store.StoreID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	if err := s.products.ReplaceAll(ctx, store.StoreID, products); err != nil {
		return nil, fmt.Errorf("failed to replace cached products: %w", err)
	}
	if err := s.orders.ReplaceAll(ctx, store.StoreID, orders); err != nil {
		return nil, fmt.Errorf("failed to replace cached orders: %w", err)
	}

	s.logger.Info("Synced store %s: %d products, %d orders", store.StoreID, len(products), len(orders))

	return &SyncSummary{
		StoreID:  store.StoreID,
		Products: len(products),
		Orders:   len(orders),
	}, nil
}

func (s *SyncService) fetchAllProducts(client *Client, storeID string) ([]models.Product, error) {
	var products []models.Product
	offset := 0

	for {
		page, err := client.GetProducts(offset, syncPageSize)
		if err != nil {
			return nil, err
		}

		for i := range page.Items {
			products = append(products, s.transformer.TransformProduct(storeID, &page.Items[i]))
		}

		offset += page.Count
		if page.Count == 0 || offset >= page.Total {
			break
		}
	}

	return products, nil
}

func (s *SyncService) fetchAllOrders(client *Client, storeID string) ([]models.Order, error) {
	var orders []models.Order
	offset := 0

	for {
		page, err := client.GetOrders(offset, syncPageSize)
		if err != nil {
			return nil, err
		}

		for i := range page.Items {
			orders = append(orders, s.transformer.TransformOrder(storeID, &page.Items[i]))
		}

		offset += page.Count
		if page.Count == 0 || offset >= page.Total {
			break
		}
	}

	return orders, nil
}
