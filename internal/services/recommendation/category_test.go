package recommendation

import (
	"context"
	"testing"

	"recommender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRecommendations_NoOrdersUsesPriceOnly(t *testing.T) {
	// Store-wide sentinel with no order history: pure price ranking
	repo := newFakeRepo([]models.Product{
		product("cheap", 5, 5, "1"),
		product("premium", 50, 5, "1"),
		product("mid", 20, 5, "2"),
	}, nil)
	engine := newTestCategoryEngine(repo)

	picked, err := engine.ComputeCategoryRecommendations(context.Background(), "store-1", models.DefaultCategoryID)
	require.NoError(t, err)

	assert.Equal(t, models.IDList{"premium", "mid", "cheap"}, picked)
	assert.Equal(t, models.IDList{"premium", "mid", "cheap"}, repo.savedCats[models.DefaultCategoryID])
}

func TestCategoryRecommendations_NoOrdersSpecificCategory(t *testing.T) {
	repo := newFakeRepo([]models.Product{
		product("a", 5, 5, "1"),
		product("b", 50, 5, "2"),
		product("c", 20, 5, "1"),
	}, nil)
	engine := newTestCategoryEngine(repo)

	picked, err := engine.ComputeCategoryRecommendations(context.Background(), "store-1", "1")
	require.NoError(t, err)

	assert.Equal(t, models.IDList{"c", "a"}, picked)
}

func TestCategoryRecommendations_FrequencyRanking(t *testing.T) {
	repo := newFakeRepo([]models.Product{
		product("a", 5, 5, "1"),
		product("b", 50, 5, "1"),
		product("c", 20, 5, "1"),
		product("d", 30, 5, "1"),
	}, []models.Order{
		order("o1", "a", "b"),
		order("o2", "a", "c"),
		order("o3", "a", "b", "d"),
		order("o4", "b", "c"),
	})
	engine := newTestCategoryEngine(repo)

	picked, err := engine.ComputeCategoryRecommendations(context.Background(), "store-1", "1")
	require.NoError(t, err)

	// a and b appear 3 times each (a first in the scan), c twice
	assert.Equal(t, models.IDList{"a", "b", "c"}, picked)
}

func TestCategoryRecommendations_FrequencyShortfallMergesPriceFallback(t *testing.T) {
	repo := newFakeRepo([]models.Product{
		product("bought", 5, 5, "1"),
		product("premium", 50, 5, "1"),
		product("mid", 20, 5, "1"),
	}, []models.Order{
		order("o1", "bought"),
	})
	engine := newTestCategoryEngine(repo)

	picked, err := engine.ComputeCategoryRecommendations(context.Background(), "store-1", "1")
	require.NoError(t, err)

	// Frequency result first, then price fallback without duplicating it
	assert.Equal(t, models.IDList{"bought", "premium", "mid"}, picked)
}

func TestCategoryRecommendations_OutOfStockExcluded(t *testing.T) {
	repo := newFakeRepo([]models.Product{
		product("gone", 99, 0, "1"),
		product("ok", 10, 5, "1"),
	}, []models.Order{
		order("o1", "gone"),
		order("o2", "gone"),
	})
	engine := newTestCategoryEngine(repo)

	picked, err := engine.ComputeCategoryRecommendations(context.Background(), "store-1", "1")
	require.NoError(t, err)

	assert.NotContains(t, picked, "gone")
	assert.Equal(t, models.IDList{"ok"}, picked)
}

func TestCategoryRecommendations_FrequencyCountsOrdersOutsideCategory(t *testing.T) {
	// Purchase frequency is global: orders containing products from other
	// categories still count for members of the target category
	repo := newFakeRepo([]models.Product{
		product("a", 5, 5, "1"),
		product("b", 50, 5, "1"),
		product("x", 9, 5, "2"),
	}, []models.Order{
		order("o1", "a", "x"),
		order("o2", "b"),
		order("o3", "a"),
	})
	engine := newTestCategoryEngine(repo)

	picked, err := engine.ComputeCategoryRecommendations(context.Background(), "store-1", "1")
	require.NoError(t, err)

	assert.Equal(t, models.IDList{"a", "b"}, picked[:2])
	assert.NotContains(t, picked, "x")
}

func TestGenerateAllCategoryRecommendations_DiscoversUniverse(t *testing.T) {
	repo := newFakeRepo([]models.Product{
		product("a", 5, 5, "1"),
		product("b", 50, 5, "2", "3"),
		product("c", 20, 5, "1"),
	}, nil)
	engine := newTestCategoryEngine(repo)

	summary, err := engine.GenerateAllCategoryRecommendations(context.Background(), "store-1")
	require.NoError(t, err)

	// Categories 1, 2, 3 plus the store-wide sentinel
	assert.Equal(t, 4, summary.TotalCategories)
	assert.Equal(t, 4, summary.Processed)
	assert.Equal(t, 4, summary.Successful)
	assert.Equal(t, 0, summary.Errors)
	assert.InDelta(t, 100.0, summary.CompletionRate, 0.001)

	for _, id := range []string{"1", "2", "3", models.DefaultCategoryID} {
		assert.Contains(t, repo.savedCats, id)
	}
}

func TestGenerateAllCategoryRecommendations_PerCategoryErrorCounted(t *testing.T) {
	repo := newFakeRepo([]models.Product{
		product("a", 5, 5, "1"),
		product("b", 50, 5, "2"),
	}, nil)
	repo.catSaveErrFor = map[string]error{"1": errBoom}
	engine := newTestCategoryEngine(repo)

	summary, err := engine.GenerateAllCategoryRecommendations(context.Background(), "store-1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalCategories)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 2, summary.Successful)

	// The failed category did not stop the others
	assert.Contains(t, repo.savedCats, "2")
	assert.Contains(t, repo.savedCats, models.DefaultCategoryID)
}

func TestGenerateAllCategoryRecommendations_CatalogReadFailureAborts(t *testing.T) {
	repo := newFakeRepo(nil, nil)
	repo.listProductsErr = errBoom
	engine := newTestCategoryEngine(repo)

	_, err := engine.GenerateAllCategoryRecommendations(context.Background(), "store-1")
	require.Error(t, err)
}
