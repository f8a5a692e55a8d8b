package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_Aggregate(t *testing.T) {
	items := []LineItem{
		{OrderCode: "A100", Product: "Shirt", Attribute: "Red", Quantity: 2},
		{OrderCode: "A200", Product: "Hat", Attribute: "", Quantity: 1},
		{OrderCode: "A300", Product: "Shirt", Attribute: "Red", Quantity: 3},
	}

	merged := Aggregator{}.Aggregate(items)

	require.Len(t, merged, 2)
	assert.Equal(t, "Shirt", merged[0].Product)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.Equal(t, "A100;A300", merged[0].JoinedCodes())
	assert.Equal(t, "Hat", merged[1].Product)
	assert.Equal(t, 1, merged[1].Quantity)
}

func TestAggregator_AttributeSplitsKeys(t *testing.T) {
	items := []LineItem{
		{OrderCode: "A100", Product: "Shirt", Attribute: "Red", Quantity: 1},
		{OrderCode: "A100", Product: "Shirt", Attribute: "Blue", Quantity: 1},
	}

	merged := Aggregator{}.Aggregate(items)

	require.Len(t, merged, 2)
}

func TestAggregator_DuplicateCodesPreserved(t *testing.T) {
	// The same order contributing two lines for one key appears twice.
	items := []LineItem{
		{OrderCode: "A100", Product: "Shirt", Attribute: "Red", Quantity: 1},
		{OrderCode: "A100", Product: "Shirt", Attribute: "Red", Quantity: 1},
	}

	merged := Aggregator{}.Aggregate(items)

	require.Len(t, merged, 1)
	assert.Equal(t, 2, merged[0].Quantity)
	assert.Equal(t, "A100;A100", merged[0].JoinedCodes())
}

func TestAggregator_CaseSensitiveByDefault(t *testing.T) {
	items := []LineItem{
		{OrderCode: "A100", Product: "shirt", Attribute: "", Quantity: 1},
		{OrderCode: "A200", Product: "Shirt", Attribute: "", Quantity: 1},
	}

	merged := Aggregator{}.Aggregate(items)
	require.Len(t, merged, 2)

	folded := Aggregator{FoldCase: true}.Aggregate(items)
	require.Len(t, folded, 1)
	assert.Equal(t, 2, folded[0].Quantity)
	assert.Equal(t, "shirt", folded[0].Product, "first-seen spelling wins")
}

func TestAggregator_Empty(t *testing.T) {
	merged := Aggregator{}.Aggregate(nil)
	assert.Empty(t, merged)
}
