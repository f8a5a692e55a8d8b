package workbook

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Samuel-ncu/goshopsync/internal/application/sales"
	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

func writeRunFixture(t *testing.T, store *Store, name string, prices ...float64) {
	t.Helper()

	records := make([]order.RawRecord, 0, len(prices))
	for i, p := range prices {
		records = append(records, order.RawRecord{
			Seq:        "1",
			Code:       name + "-" + string(rune('A'+i)),
			FinalPrice: decimal.NewFromFloat(p),
		})
	}
	_, err := store.WriteRun(name, order.RunSnapshot{Raw: records})
	require.NoError(t, err)
}

func TestStore_RunRevenues(t *testing.T) {
	store := NewStore(t.TempDir(), logger.NewNop())

	writeRunFixture(t, store, "orders_20260801_alice.xlsx", 10.25, 5.00)
	writeRunFixture(t, store, "orders_20260815_alice.xlsx", 1.75)

	rows, err := store.RunRevenues()

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "orders_20260801_alice.xlsx", rows[0].File)
	assert.True(t, decimal.NewFromFloat(15.25).Equal(rows[0].Revenue), "got %s", rows[0].Revenue)
	assert.True(t, decimal.NewFromFloat(1.75).Equal(rows[1].Revenue), "got %s", rows[1].Revenue)
}

func TestStore_RunRevenues_SkipsRestSnapshot(t *testing.T) {
	store := NewStore(t.TempDir(), logger.NewNop())

	writeRunFixture(t, store, "orders_20260801_alice.xlsx", 10)
	_, err := store.WriteRest("orders_rest_alice.xlsx", []order.RawRecord{
		{Code: "A900", FinalPrice: decimal.NewFromInt(99)},
	})
	require.NoError(t, err)

	rows, err := store.RunRevenues()

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "orders_20260801_alice.xlsx", rows[0].File)
}

func TestStore_RunRevenues_EmptyDir(t *testing.T) {
	store := NewStore(t.TempDir(), logger.NewNop())

	rows, err := store.RunRevenues()

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_WriteSummary(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, logger.NewNop())

	rows := []sales.RunRevenue{
		{File: "orders_20260801_alice.xlsx", Revenue: decimal.NewFromFloat(15.25)},
		{File: "orders_20260815_alice.xlsx", Revenue: decimal.NewFromFloat(1.75)},
	}
	require.NoError(t, store.WriteSummary(rows, decimal.NewFromFloat(17.00)))

	f, err := excelize.OpenFile(filepath.Join(dir, "sales.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	revenue, err := f.GetRows("Run Revenue")
	require.NoError(t, err)
	require.Len(t, revenue, 3)
	assert.Equal(t, "orders_20260801_alice.xlsx", revenue[1][0])

	cumulative, err := f.GetRows("Cumulative")
	require.NoError(t, err)
	require.Len(t, cumulative, 2)
	assert.Equal(t, "17", cumulative[1][0])
}

func TestStore_AppendClassTotals(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, logger.NewNop())

	first := sales.ClassTotals{
		Date:          "2026-08-01",
		Amount:        decimal.NewFromInt(10),
		ServiceCharge: decimal.NewFromInt(1),
		FinalPrice:    decimal.NewFromInt(11),
	}
	second := sales.ClassTotals{
		Date:          "2026-08-15",
		Amount:        decimal.NewFromInt(20),
		ServiceCharge: decimal.NewFromInt(2),
		FinalPrice:    decimal.NewFromInt(22),
	}

	require.NoError(t, store.AppendClassTotals(sales.LogPending, first))
	require.NoError(t, store.AppendClassTotals(sales.LogPending, second))

	f, err := excelize.OpenFile(filepath.Join(dir, sales.LogPending))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Amount", "Service charge", "Final price"}, rows[0])
	assert.Equal(t, "2026-08-01", rows[1][0])
	assert.Equal(t, "2026-08-15", rows[2][0])
	assert.Equal(t, "22", rows[2][3])
}
