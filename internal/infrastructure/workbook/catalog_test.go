package workbook

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

func writeCatalogFixture(t *testing.T, path string, header []interface{}, rows ...[]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, setRow(f, f.GetSheetName(0), 1, header))
	for i, row := range rows {
		require.NoError(t, setRow(f, f.GetSheetName(0), i+2, row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestCatalogFile_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products_list.xlsx")
	writeCatalogFixture(t, path,
		[]interface{}{"Name", "url", "Unit Cost", "Category", "Current Qty"},
		[]interface{}{"Shirt", "https://example.com/shirt", 4.50, "Apparel", 12},
		[]interface{}{"Hat", "https://example.com/hat", 2, "Apparel", 3},
	)

	entries, err := NewCatalogFile(path, logger.NewNop()).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Shirt", entries[0].Name)
	assert.Equal(t, "https://example.com/shirt", entries[0].URL)
	assert.True(t, decimal.NewFromFloat(4.50).Equal(entries[0].UnitCost))
	assert.Equal(t, "Apparel", entries[0].Category)
	assert.Equal(t, 12, entries[0].StockQty)
}

func TestCatalogFile_Load_SkipsBlankNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products_list.xlsx")
	writeCatalogFixture(t, path,
		[]interface{}{"Name", "url", "Unit Cost"},
		[]interface{}{"", "https://example.com/x", 1},
		[]interface{}{"Shirt", "https://example.com/shirt", 2},
	)

	entries, err := NewCatalogFile(path, logger.NewNop()).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Shirt", entries[0].Name)
}

func TestCatalogFile_Load_BadUnitCostClampedToZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products_list.xlsx")
	writeCatalogFixture(t, path,
		[]interface{}{"Name", "url", "Unit Cost"},
		[]interface{}{"Shirt", "", "free"},
		[]interface{}{"Hat", "", -3},
	)

	entries, err := NewCatalogFile(path, logger.NewNop()).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].UnitCost.IsZero())
	assert.True(t, entries[1].UnitCost.IsZero())
}

func TestCatalogFile_Load_MissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products_list.xlsx")
	writeCatalogFixture(t, path,
		[]interface{}{"Name", "Unit Cost"},
		[]interface{}{"Shirt", 4},
	)

	_, err := NewCatalogFile(path, logger.NewNop()).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "url"`)
}

func TestCatalogFile_Load_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products_list.xlsx")

	_, err := NewCatalogFile(path, logger.NewNop()).Load(context.Background())

	assert.Error(t, err)
}
