package recommendation

import (
	"context"
	"fmt"
	"sort"

	"recommender/internal/logger"
	"recommender/internal/models"
)

// CategoryWriter contract interface
type CategoryWriter interface {
	UpsertRecommendations(ctx context.Context, storeID, categoryID string, productIDs models.IDList) error
}

// CategorySummary aggregates one generate-all run over a store's categories.
type CategorySummary struct {
	TotalCategories int     `json:"total_categories"`
	Processed       int     `json:"processed"`
	Successful      int     `json:"successful"`
	Errors          int     `json:"errors"`
	CompletionRate  float64 `json:"completion_rate"`
}

// CategoryEngine computes per-category "popular products" lists: purchase
// frequency across the whole order history, backfilled with the most
// expensive products when the store has little or no order data.
type CategoryEngine struct {
	products ProductReader
	orders   OrderReader
	writer   CategoryWriter
	logger   *logger.Logger
}

func NewCategoryEngine(products ProductReader, orders OrderReader, writer CategoryWriter, logger *logger.Logger) *CategoryEngine {
	return &CategoryEngine{
		products: products,
		orders:   orders,
		writer:   writer,
		logger:   logger,
	}
}

// ComputeCategoryRecommendations builds and persists the list for one
// category. The sentinel models.DefaultCategoryID means "across the whole
// store".
func (e *CategoryEngine) ComputeCategoryRecommendations(ctx context.Context, storeID, categoryID string) (models.IDList, error) {
	catalog, err := e.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	orders, err := e.orders.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	members := categoryMembers(categoryID, catalog)

	var picked models.IDList
	if len(orders) == 0 {
		// No purchase signal at all: straight price fallback.
		picked = topByPrice(members, nil)
	} else {
		picked = topByFrequency(members, orders)
		if len(picked) < MaxRecommendations {
			already := make(map[string]bool, len(picked))
			for _, id := range picked {
				already[id] = true
			}
			picked = append(picked, topByPrice(members, already)...)
			if len(picked) > MaxRecommendations {
				picked = picked[:MaxRecommendations]
			}
		}
	}

	if err := e.writer.UpsertRecommendations(ctx, storeID, categoryID, picked); err != nil {
		return nil, fmt.Errorf("failed to save category recommendations: %w", err)
	}

	return picked, nil
}

// GenerateAllCategoryRecommendations discovers the category universe from the
// current product set (plus the store-wide sentinel) and recomputes every list.
// Per-category failures are counted and skipped.
func (e *CategoryEngine) GenerateAllCategoryRecommendations(ctx context.Context, storeID string) (*CategorySummary, error) {
	catalog, err := e.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for store %s: %w", storeID, err)
	}

	categoryIDs := discoverCategories(catalog)
	summary := &CategorySummary{TotalCategories: len(categoryIDs)}

	for _, categoryID := range categoryIDs {
		_, err := e.ComputeCategoryRecommendations(ctx, storeID, categoryID)
		summary.Processed++

		if err != nil {
			summary.Errors++
			e.logger.Error("Failed to generate recommendations for category %s: %v", categoryID, err)
		} else {
			summary.Successful++
		}
	}

	if summary.TotalCategories > 0 {
		summary.CompletionRate = float64(summary.Successful) / float64(summary.TotalCategories) * 100
	}

	e.logger.Info("Category recommendation run finished for store %s: %d/%d successful, %d errors",
		storeID, summary.Successful, summary.TotalCategories, summary.Errors)

	return summary, nil
}

// discoverCategories unions every product's category ids, in first-seen order,
// and appends the store-wide sentinel.
func discoverCategories(catalog []models.Product) []string {
	seen := make(map[string]bool)
	var ids []string

	for _, p := range catalog {
		for _, id := range p.CategoryIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	return append(ids, models.DefaultCategoryID)
}

// categoryMembers returns the products eligible as recommendation targets for
// the category: in-stock members, or every in-stock priced product for the
// store-wide sentinel.
func categoryMembers(categoryID string, catalog []models.Product) []models.Product {
	var members []models.Product
	for _, p := range catalog {
		if !p.InStock() {
			continue
		}
		if categoryID == models.DefaultCategoryID {
			if p.Priced() {
				members = append(members, p)
			}
			continue
		}
		if p.CategoryIDs.Contains(categoryID) {
			members = append(members, p)
		}
	}
	return members
}

// topByFrequency ranks members by how many orders contain them, count
// descending with first-appearance tie-break, capped at MaxRecommendations.
// This is global purchase frequency, not co-occurrence with any one product.
func topByFrequency(members []models.Product, orders []models.Order) models.IDList {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	seq := 0

	for _, order := range orders {
		for _, id := range order.ProductIDs {
			if _, ok := counts[id]; !ok {
				firstSeen[id] = seq
				seq++
			}
			counts[id]++
		}
	}

	var ranked []string
	for _, p := range members {
		if counts[p.ProductID] > 0 {
			ranked = append(ranked, p.ProductID)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if len(ranked) > MaxRecommendations {
		ranked = ranked[:MaxRecommendations]
	}
	return models.IDList(ranked)
}

// topByPrice returns up to MaxRecommendations priced members, most expensive
// first, skipping anything in already.
func topByPrice(members []models.Product, already map[string]bool) models.IDList {
	var candidates []models.Product
	for _, p := range members {
		if !p.Priced() {
			continue
		}
		if already[p.ProductID] {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price > candidates[j].Price
	})

	picked := models.IDList{}
	for _, p := range candidates {
		if len(picked) >= MaxRecommendations {
			break
		}
		picked = append(picked, p.ProductID)
	}
	return picked
}
