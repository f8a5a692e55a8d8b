package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
)

func TestEnrich(t *testing.T) {
	merged := []order.MergedItem{
		{Product: "Shirt", Quantity: 2},
		{Product: "Hat", Quantity: 1},
	}
	entries := []Product{
		{Name: "Shirt", UnitCost: decimal.NewFromFloat(4.50), URL: "https://example.com/shirt"},
	}

	enriched, unmatched := Enrich(merged, entries)

	require.Len(t, enriched, 2)
	assert.Equal(t, 1, unmatched)
	assert.True(t, decimal.NewFromFloat(4.50).Equal(enriched[0].UnitCost))
	assert.Equal(t, "https://example.com/shirt", enriched[0].URL)
	assert.True(t, enriched[1].UnitCost.IsZero())
	assert.Empty(t, enriched[1].URL)
}

func TestEnrich_TrimsBothSides(t *testing.T) {
	merged := []order.MergedItem{{Product: "  Shirt "}}
	entries := []Product{{Name: " Shirt  ", UnitCost: decimal.NewFromInt(3)}}

	enriched, unmatched := Enrich(merged, entries)

	assert.Equal(t, 0, unmatched)
	assert.True(t, decimal.NewFromInt(3).Equal(enriched[0].UnitCost))
}

func TestEnrich_FirstCatalogMatchWins(t *testing.T) {
	merged := []order.MergedItem{{Product: "Shirt"}}
	entries := []Product{
		{Name: "Shirt", UnitCost: decimal.NewFromInt(3)},
		{Name: "Shirt", UnitCost: decimal.NewFromInt(9)},
	}

	enriched, _ := Enrich(merged, entries)

	assert.True(t, decimal.NewFromInt(3).Equal(enriched[0].UnitCost))
}

func TestEnrich_EmptyCatalog(t *testing.T) {
	merged := []order.MergedItem{{Product: "Shirt"}, {Product: "Hat"}}

	enriched, unmatched := Enrich(merged, nil)

	assert.Equal(t, 2, unmatched)
	for _, m := range enriched {
		assert.True(t, m.UnitCost.IsZero())
		assert.Empty(t, m.URL)
	}
}
