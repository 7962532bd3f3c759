package recommendation

import (
	"context"
	"fmt"
	"sort"

	"recommender/internal/logger"
	"recommender/internal/models"
)

const (
	// MaxRecommendations caps every generated list.
	MaxRecommendations = 3

	// UpsellPriceMultiplier is the markup threshold for the price-tier
	// upsell: candidates must cost at least 20% more than the source.
	UpsellPriceMultiplier = 1.2

	// MinPriceStep is the minimum absolute price difference for an upsell
	// candidate, guarding against float-equality false positives.
	MinPriceStep = 0.01
)

// ProductReader contract interface
type ProductReader interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Product, error)
	FindByID(ctx context.Context, storeID, productID string) (*models.Product, error)
}

// OrderReader contract interface
type OrderReader interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Order, error)
}

// RecommendationWriter contract interface
type RecommendationWriter interface {
	SaveRecommendations(ctx context.Context, storeID, productID string, crossSells, upsells models.IDList) error
}

// Result is the pair of lists computed for one source product.
type Result struct {
	CrossSell models.IDList `json:"cross_sell"`
	Upsell    models.IDList `json:"upsell"`
}

// BatchSummary aggregates one generate-all run over a store's products.
type BatchSummary struct {
	TotalProducts  int     `json:"total_products"`
	Processed      int     `json:"processed"`
	Successful     int     `json:"successful"`
	Errors         int     `json:"errors"`
	CompletionRate float64 `json:"completion_rate"`
}

// Engine computes per-product cross-sell and upsell lists from the cached
// catalog and order history, using a tiered fallback strategy so every product
// with catalog neighbours ends up with full lists.
type Engine struct {
	products ProductReader
	orders   OrderReader
	writer   RecommendationWriter
	logger   *logger.Logger
}

func NewEngine(products ProductReader, orders OrderReader, writer RecommendationWriter, logger *logger.Logger) *Engine {
	return &Engine{
		products: products,
		orders:   orders,
		writer:   writer,
		logger:   logger,
	}
}

// ComputeRecommendations builds both lists for one source product and persists
// them onto its row. A missing source product is not an error: it logs a
// warning and returns two empty lists without writing.
func (e *Engine) ComputeRecommendations(ctx context.Context, storeID, productID string) (*Result, error) {
	source, err := e.products.FindByID(ctx, storeID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load source product: %w", err)
	}
	if source == nil {
		e.logger.Warn("Product %s not found in store %s, skipping recommendations", productID, storeID)
		return &Result{CrossSell: models.IDList{}, Upsell: models.IDList{}}, nil
	}

	catalog, err := e.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	orders, err := e.orders.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	result := &Result{
		CrossSell: e.crossSellList(source, catalog, orders),
		Upsell:    e.upsellList(source, catalog),
	}

	if err := e.writer.SaveRecommendations(ctx, storeID, productID, result.CrossSell, result.Upsell); err != nil {
		return nil, fmt.Errorf("failed to save recommendations: %w", err)
	}

	return result, nil
}

// GenerateAllRecommendations runs the engine over every product in the store,
// sequentially. Per-product failures are counted and skipped; only a failure
// to enumerate the catalog aborts the run.
func (e *Engine) GenerateAllRecommendations(ctx context.Context, storeID string) (*BatchSummary, error) {
	catalog, err := e.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for store %s: %w", storeID, err)
	}

	summary := &BatchSummary{TotalProducts: len(catalog)}

	for i, product := range catalog {
		result, err := e.ComputeRecommendations(ctx, storeID, product.ProductID)
		summary.Processed++

		if err != nil {
			summary.Errors++
			e.logger.Error("Failed to generate recommendations for product %s: %v", product.ProductID, err)
		} else if len(result.CrossSell)+len(result.Upsell) > 0 {
			summary.Successful++
		}

		if (i+1)%10 == 0 {
			e.logger.Info("Recommendation progress for store %s: %d/%d", storeID, i+1, len(catalog))
		}
	}

	if summary.TotalProducts > 0 {
		summary.CompletionRate = float64(summary.Successful) / float64(summary.TotalProducts) * 100
	}

	e.logger.Info("Recommendation run finished for store %s: %d/%d successful, %d errors",
		storeID, summary.Successful, summary.TotalProducts, summary.Errors)

	return summary, nil
}

// crossSellList fills up to MaxRecommendations ids through four tiers:
// order co-occurrence, then the upsell price tier, then same-category by
// price, then the whole store by price. Each tier excludes everything an
// earlier tier already picked.
func (e *Engine) crossSellList(source *models.Product, catalog []models.Product, orders []models.Order) models.IDList {
	byID := indexCatalog(catalog)

	picked := models.IDList{}
	excluded := map[string]bool{source.ProductID: true}

	appendPicks(&picked, excluded, byID, coOccurringProducts(source.ProductID, orders))

	if len(picked) < MaxRecommendations {
		appendPicks(&picked, excluded, byID, productIDs(priceTierUpsells(source, catalog)))
	}
	if len(picked) < MaxRecommendations {
		appendPicks(&picked, excluded, byID, productIDs(mostExpensiveInCategory(source, catalog)))
	}
	if len(picked) < MaxRecommendations {
		appendPicks(&picked, excluded, byID, productIDs(mostExpensiveGlobally(source, catalog)))
	}

	return picked
}

// upsellList fills up to MaxRecommendations ids through three tiers: the
// price-tier upsell (cheapest qualifying step up first), then same-category by
// price, then the whole store by price. It is computed independently of the
// cross-sell list.
func (e *Engine) upsellList(source *models.Product, catalog []models.Product) models.IDList {
	byID := indexCatalog(catalog)

	picked := models.IDList{}
	excluded := map[string]bool{source.ProductID: true}

	appendPicks(&picked, excluded, byID, productIDs(priceTierUpsells(source, catalog)))

	if len(picked) < MaxRecommendations {
		appendPicks(&picked, excluded, byID, productIDs(mostExpensiveInCategory(source, catalog)))
	}
	if len(picked) < MaxRecommendations {
		appendPicks(&picked, excluded, byID, productIDs(mostExpensiveGlobally(source, catalog)))
	}

	return picked
}

// appendPicks copies candidate ids into picked until the cap, skipping ids
// already excluded and ids that are not valid targets (absent from the catalog
// or out of stock).
func appendPicks(picked *models.IDList, excluded map[string]bool, byID map[string]*models.Product, candidates []string) {
	for _, id := range candidates {
		if len(*picked) >= MaxRecommendations {
			return
		}
		if excluded[id] {
			continue
		}
		product, ok := byID[id]
		if !ok || !product.InStock() {
			continue
		}
		*picked = append(*picked, id)
		excluded[id] = true
	}
}

// coOccurringProducts tallies, over every order containing sourceID, how often
// each other product was bought alongside it. Ranked by count descending;
// ties break by first appearance in the order scan, which keeps the ranking
// stable across runs over unchanged data.
func coOccurringProducts(sourceID string, orders []models.Order) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	seq := 0

	for _, order := range orders {
		if !order.ProductIDs.Contains(sourceID) {
			continue
		}
		for _, id := range order.ProductIDs {
			if id == sourceID {
				continue
			}
			if _, ok := counts[id]; !ok {
				firstSeen[id] = seq
				seq++
			}
			counts[id]++
		}
	}

	ranked := make([]string, 0, len(counts))
	for id := range counts {
		ranked = append(ranked, id)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	return ranked
}

// priceTierUpsells returns the candidates for the price-tier upsell, cheapest
// first. A source without a price or without categories yields nothing.
func priceTierUpsells(source *models.Product, catalog []models.Product) []models.Product {
	if !source.Priced() || len(source.CategoryIDs) == 0 {
		return nil
	}

	var candidates []models.Product
	for _, p := range catalog {
		if p.ProductID == source.ProductID || !p.InStock() {
			continue
		}
		if !p.CategoryIDs.Intersects(source.CategoryIDs) {
			continue
		}
		if p.Price < source.Price*UpsellPriceMultiplier {
			continue
		}
		if p.Price <= source.Price+MinPriceStep {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price < candidates[j].Price
	})

	return candidates
}

// mostExpensiveInCategory returns in-stock priced products sharing at least
// one category with the source, most expensive first.
func mostExpensiveInCategory(source *models.Product, catalog []models.Product) []models.Product {
	var candidates []models.Product
	for _, p := range catalog {
		if p.ProductID == source.ProductID || !p.InStock() || !p.Priced() {
			continue
		}
		if !p.CategoryIDs.Intersects(source.CategoryIDs) {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price > candidates[j].Price
	})

	return candidates
}

// mostExpensiveGlobally returns every in-stock priced product in the store,
// most expensive first.
func mostExpensiveGlobally(source *models.Product, catalog []models.Product) []models.Product {
	var candidates []models.Product
	for _, p := range catalog {
		if p.ProductID == source.ProductID || !p.InStock() || !p.Priced() {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price > candidates[j].Price
	})

	return candidates
}

func indexCatalog(catalog []models.Product) map[string]*models.Product {
	byID := make(map[string]*models.Product, len(catalog))
	for i := range catalog {
		byID[catalog[i].ProductID] = &catalog[i]
	}
	return byID
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	return ids
}
