package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []*Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*Product{
		{
			ID: 1, Name: "Notebook Pro", Brand: "TechCo", Category: "notebooks",
			Description: "Powerful notebook for professionals",
			Price:       decimal.NewFromInt(4500), Stock: 10, Rating: 4.8, Reviews: 320,
			Tags: []string{"work", "premium"}, Status: ProductStatusActive, CreatedAt: base,
		},
		{
			ID: 2, Name: "Notebook Air", Brand: "TechCo", Category: "notebooks",
			Description: "Light and portable",
			Price:       decimal.NewFromInt(3200), Stock: 0, Rating: 4.5, Reviews: 150,
			Status: ProductStatusActive, CreatedAt: base.AddDate(0, 1, 0),
		},
		{
			ID: 3, Name: "Wireless Mouse", Brand: "ClickFast", Category: "accessories",
			Description: "Ergonomic mouse for notebook users",
			Price:       decimal.NewFromFloat(89.90), Stock: 50, Rating: 4.2, Reviews: 800,
			Status: ProductStatusActive, CreatedAt: base.AddDate(0, 2, 0),
		},
	}
}

func TestRelevanceScoring(t *testing.T) {
	products := catalogFixture()

	exact := Relevance(products[0], "notebook pro")
	prefix := Relevance(products[0], "notebook")
	desc := Relevance(products[2], "ergonomic")

	assert.Greater(t, exact, prefix, "exact name match outranks prefix")
	assert.Greater(t, prefix, desc, "name prefix outranks description hit")
	assert.Zero(t, Relevance(products[0], "teclado"), "no hit scores zero")
}

func TestSearchByRelevanceOrdersResults(t *testing.T) {
	results := Search(catalogFixture(), "notebook", Filters{}, SortByRelevance)
	require.Len(t, results, 3, "mouse matches via description")

	// 名称前缀命中且有货的 Notebook Pro 排第一；
	// Notebook Air 同为前缀命中但无货少 5 分
	assert.Equal(t, uint(1), results[0].ID)
	assert.Equal(t, uint(2), results[1].ID)
	assert.Equal(t, uint(3), results[2].ID)
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	products := catalogFixture()
	Search(products, "", Filters{}, SortByPriceAsc)

	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, uint(2), products[1].ID)
	assert.Equal(t, uint(3), products[2].ID)
}

func TestSearchFilters(t *testing.T) {
	products := catalogFixture()

	inStock := Search(products, "", Filters{InStock: true}, SortByName)
	require.Len(t, inStock, 2)
	for _, p := range inStock {
		assert.True(t, p.InStock())
	}

	cheap := Search(products, "", Filters{PriceMax: decimal.NewFromInt(100)}, "")
	require.Len(t, cheap, 1)
	assert.Equal(t, uint(3), cheap[0].ID)

	brand := Search(products, "", Filters{Brand: "techco"}, "")
	assert.Len(t, brand, 2, "brand filter is case-insensitive")

	rated := Search(products, "", Filters{MinRating: 4.6}, "")
	require.Len(t, rated, 1)
	assert.Equal(t, uint(1), rated[0].ID)
}

func TestSearchSortModes(t *testing.T) {
	products := catalogFixture()

	byPrice := Search(products, "", Filters{}, SortByPriceAsc)
	assert.Equal(t, uint(3), byPrice[0].ID)
	assert.Equal(t, uint(1), byPrice[2].ID)

	byPriceDesc := Search(products, "", Filters{}, SortByPriceDesc)
	assert.Equal(t, uint(1), byPriceDesc[0].ID)

	byRating := Search(products, "", Filters{}, SortByRating)
	assert.Equal(t, uint(1), byRating[0].ID)

	byNewest := Search(products, "", Filters{}, SortByNewest)
	assert.Equal(t, uint(3), byNewest[0].ID)

	byBestseller := Search(products, "", Filters{}, SortByBestseller)
	assert.Equal(t, uint(3), byBestseller[0].ID)
}

func TestProductOnSale(t *testing.T) {
	p := &Product{Price: decimal.NewFromInt(80), OriginalPrice: decimal.NewFromInt(100)}
	assert.True(t, p.OnSale())

	full := &Product{Price: decimal.NewFromInt(100)}
	assert.False(t, full.OnSale())
}

func TestAdjustStockClampsAtZero(t *testing.T) {
	p := &Product{Stock: 3}
	old := p.AdjustStock(-5)
	assert.Equal(t, 3, old)
	assert.Equal(t, 0, p.Stock)
}
