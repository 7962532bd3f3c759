package recommendation

import (
	"context"
	"fmt"

	"recommender/internal/logger"
	"recommender/internal/models"
)

// fakeRepo backs the engine's reader/writer contracts with in-memory slices
// for a single store.
type fakeRepo struct {
	products []models.Product
	orders   []models.Order

	savedCross map[string]models.IDList
	savedUp    map[string]models.IDList
	savedCats  map[string]models.IDList

	listProductsErr error
	listOrdersErr   error
	saveErr         error
	findErrFor      map[string]error
	catSaveErrFor   map[string]error
}

func newFakeRepo(products []models.Product, orders []models.Order) *fakeRepo {
	return &fakeRepo{
		products:   products,
		orders:     orders,
		savedCross: make(map[string]models.IDList),
		savedUp:    make(map[string]models.IDList),
		savedCats:  make(map[string]models.IDList),
	}
}

func (f *fakeRepo) ListByStore(ctx context.Context, storeID string) ([]models.Product, error) {
	if f.listProductsErr != nil {
		return nil, f.listProductsErr
	}
	return f.products, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, storeID, productID string) (*models.Product, error) {
	if err := f.findErrFor[productID]; err != nil {
		return nil, err
	}
	for i := range f.products {
		if f.products[i].ProductID == productID {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) SaveRecommendations(ctx context.Context, storeID, productID string, crossSells, upsells models.IDList) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedCross[productID] = crossSells
	f.savedUp[productID] = upsells
	return nil
}

func (f *fakeRepo) UpsertRecommendations(ctx context.Context, storeID, categoryID string, productIDs models.IDList) error {
	if err := f.catSaveErrFor[categoryID]; err != nil {
		return err
	}
	f.savedCats[categoryID] = productIDs
	return nil
}

// fakeOrders adapts the same repo as a dedicated OrderReader so errors can be
// injected independently.
type fakeOrders struct {
	repo *fakeRepo
}

func (f fakeOrders) ListByStore(ctx context.Context, storeID string) ([]models.Order, error) {
	if f.repo.listOrdersErr != nil {
		return nil, f.repo.listOrdersErr
	}
	return f.repo.orders, nil
}

func testLogger() *logger.Logger {
	return logger.New("error")
}

func product(id string, price float64, stock int, categories ...string) models.Product {
	return models.Product{
		ProductID:   id,
		StoreID:     "store-1",
		Name:        "Product " + id,
		Price:       price,
		Stock:       stock,
		CategoryIDs: models.IDList(categories),
	}
}

func order(id string, productIDs ...string) models.Order {
	return models.Order{
		StoreID:    "store-1",
		OrderID:    id,
		ProductIDs: models.IDList(productIDs),
	}
}

func newTestEngine(repo *fakeRepo) *Engine {
	return NewEngine(repo, fakeOrders{repo}, repo, testLogger())
}

func newTestCategoryEngine(repo *fakeRepo) *CategoryEngine {
	return NewCategoryEngine(repo, fakeOrders{repo}, repo, testLogger())
}

var errBoom = fmt.Errorf("boom")
