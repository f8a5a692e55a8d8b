package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Samuel-ncu/goshopsync/internal/application/sales"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

const (
	summaryFile      = "sales.xlsx"
	sheetRunRevenue  = "Run Revenue"
	sheetCumulative  = "Cumulative"
	sheetClassTotals = "Sales"

	colFinalPrice = "Final price"
)

// RunRevenues re-reads every persisted run snapshot in the data
// directory and sums the stored final prices of its raw sheet. The rest
// snapshot is not a run and is skipped.
func (s *Store) RunRevenues() ([]sales.RunRevenue, error) {
	pattern := filepath.Join(s.dir, "orders_*.xlsx")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", pattern, err)
	}

	rows := make([]sales.RunRevenue, 0, len(matches))
	for _, path := range matches {
		name := filepath.Base(path)
		if strings.HasPrefix(name, "orders_rest_") {
			continue
		}
		revenue, err := s.readFinalPriceTotal(path)
		if err != nil {
			return nil, err
		}
		rows = append(rows, sales.RunRevenue{File: name, Revenue: revenue})
	}
	return rows, nil
}

func (s *Store) readFinalPriceTotal(path string) (decimal.Decimal, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return decimal.Zero, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetRawOrders)
	if err != nil {
		return decimal.Zero, fmt.Errorf("read %s of %s: %w", sheetRawOrders, path, err)
	}
	if len(rows) == 0 {
		return decimal.Zero, nil
	}

	col := -1
	for i, h := range rows[0] {
		if strings.TrimSpace(h) == colFinalPrice {
			col = i
			break
		}
	}
	if col < 0 {
		return decimal.Zero, fmt.Errorf("snapshot %s: missing %q column", path, colFinalPrice)
	}

	total := decimal.Zero
	for _, row := range rows[1:] {
		d, err := decimal.NewFromString(strings.TrimSpace(valueAt(row, col)))
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	return total, nil
}

// WriteSummary replaces the cumulative sales workbook with the
// per-snapshot revenue rows and the recomputed grand total.
func (s *Store) WriteSummary(rows []sales.RunRevenue, total decimal.Decimal) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetRunRevenue); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, sheetRunRevenue, 1, []interface{}{"File", "Revenue"}); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, sheetRunRevenue, i+2, []interface{}{r.File, r.Revenue.InexactFloat64()}); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sheetCumulative); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheetCumulative, err)
	}
	if err := setRow(f, sheetCumulative, 1, []interface{}{"Total Revenue"}); err != nil {
		return err
	}
	if err := setRow(f, sheetCumulative, 2, []interface{}{total.InexactFloat64()}); err != nil {
		return err
	}

	if _, err := s.saveAtomic(f, summaryFile); err != nil {
		return err
	}
	return nil
}

// AppendClassTotals appends one dated totals row to a first-run sales
// log, creating the log when absent.
func (s *Store) AppendClassTotals(logName string, t sales.ClassTotals) error {
	path := filepath.Join(s.dir, logName)

	var (
		f   *excelize.File
		row int
	)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f = excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), sheetClassTotals); err != nil {
			f.Close()
			return fmt.Errorf("rename sheet: %w", err)
		}
		header := []interface{}{"Date", "Amount", "Service charge", "Final price"}
		if err := setRow(f, sheetClassTotals, 1, header); err != nil {
			f.Close()
			return err
		}
		row = 2
	} else {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return fmt.Errorf("open sales log %s: %w", path, err)
		}
		existing, err := f.GetRows(sheetClassTotals)
		if err != nil {
			f.Close()
			return fmt.Errorf("read sales log %s: %w", path, err)
		}
		row = len(existing) + 1
	}
	defer f.Close()

	values := []interface{}{
		t.Date,
		t.Amount.InexactFloat64(),
		t.ServiceCharge.InexactFloat64(),
		t.FinalPrice.InexactFloat64(),
	}
	if err := setRow(f, sheetClassTotals, row, values); err != nil {
		return err
	}

	if _, err := s.saveAtomic(f, logName); err != nil {
		return err
	}
	s.log.Debug("sales log appended",
		logger.String("file", logName),
		logger.String("date", t.Date),
	)
	return nil
}
