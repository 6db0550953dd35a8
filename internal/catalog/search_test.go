package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchNoFiltersReturnsCatalogUnchanged(t *testing.T) {
	products := SampleProducts()

	filtered, err := Search(products, "", 0, "")
	require.NoError(t, err)
	assert.Equal(t, products, filtered)
}

func TestSearchAllSentinelDisablesCategoryFilter(t *testing.T) {
	products := SampleProducts()

	for _, sentinel := range []string{"all", "All", "ALL"} {
		filtered, err := Search(products, sentinel, 0, "")
		require.NoError(t, err)
		assert.Len(t, filtered, len(products))
	}
}

func TestSearchCategoryCaseInsensitive(t *testing.T) {
	filtered, err := Search(SampleProducts(), "electronics", 0, "")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Smartphone Stand", filtered[0].Name)
	assert.Equal(t, "Wireless Earbuds", filtered[1].Name)
}

func TestSearchPriceCeilingCompleteness(t *testing.T) {
	products := SampleProducts()
	ceiling := 500.0

	filtered, err := Search(products, "", ceiling, "")
	require.NoError(t, err)

	inResult := make(map[string]bool)
	for _, p := range filtered {
		price, err := p.PriceValue()
		require.NoError(t, err)
		assert.LessOrEqual(t, price, ceiling)
		inResult[p.ID] = true
	}
	for _, p := range products {
		price, err := p.PriceValue()
		require.NoError(t, err)
		if price <= ceiling {
			assert.True(t, inResult[p.ID], "product %s (price %v) should not be excluded", p.ID, price)
		}
	}
}

// A ceiling of zero is indistinguishable from "no limit". Documented
// behaviour, pinned here so any change is deliberate.
func TestSearchZeroCeilingDisablesFilter(t *testing.T) {
	products := SampleProducts()

	filtered, err := Search(products, "", 0, "")
	require.NoError(t, err)
	assert.Len(t, filtered, len(products))
}

func TestSearchTermMatchesNameSubstring(t *testing.T) {
	filtered, err := Search(SampleProducts(), "", 0, "hoodie")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Oversized Hoodie - Pink", filtered[0].Name)
}

func TestSearchCombinesFilters(t *testing.T) {
	filtered, err := Search(SampleProducts(), "Home Decor", 300, "")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Coffee Mug - Ceramic", filtered[0].Name)
}

func TestSearchBadPriceFailsOnlyWithActiveCeiling(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "Good", Price: "100", Rating: "4.0", Category: "Misc"},
		{ID: "2", Name: "Bad", Price: "not-a-number", Rating: "4.0", Category: "Misc"},
	}

	// Without a ceiling the price is never coerced, so the bad row passes.
	filtered, err := Search(products, "", 0, "")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	_, err = Search(products, "", 500, "")
	assert.Error(t, err)
}
