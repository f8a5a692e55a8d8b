package workbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Samuel-ncu/goshopsync/internal/domain/catalog"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

// Catalog workbook columns. Name and url must exist; the rest are
// optional metadata.
const (
	colName     = "Name"
	colURL      = "url"
	colUnitCost = "Unit Cost"
	colCategory = "Category"
	colStockQty = "Current Qty"
)

// CatalogFile reads the product catalog wholesale from a workbook.
// A missing file or a missing required column is fatal for the run,
// before any fetching begins.
type CatalogFile struct {
	path string
	log  logger.Logger
}

func NewCatalogFile(path string, log logger.Logger) *CatalogFile {
	return &CatalogFile{path: path, log: log}
}

func (c *CatalogFile) Load(_ context.Context) ([]catalog.Product, error) {
	f, err := excelize.OpenFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", c.path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read catalog sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog %s: empty workbook", c.path)
	}

	cols, err := headerIndex(rows[0], colName, colURL, colUnitCost)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", c.path, err)
	}

	entries := make([]catalog.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(valueAt(row, cols[colName]))
		if name == "" {
			continue
		}
		entries = append(entries, catalog.Product{
			Name:     name,
			URL:      strings.TrimSpace(valueAt(row, cols[colURL])),
			UnitCost: c.parseUnitCost(name, valueAt(row, cols[colUnitCost])),
			Category: strings.TrimSpace(valueAt(row, cols[colCategory])),
			StockQty: parseInt(valueAt(row, cols[colStockQty])),
		})
	}

	c.log.Info("catalog loaded",
		logger.String("file", c.path),
		logger.Int("entries", len(entries)),
	)
	return entries, nil
}

// parseUnitCost clamps unparseable or negative costs to zero; a bad
// cost cell is a data-quality issue, not a run failure.
func (c *CatalogFile) parseUnitCost(name, cell string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil || d.IsNegative() {
		if strings.TrimSpace(cell) != "" {
			c.log.Warn("invalid unit cost, using zero",
				logger.String("product", name),
				logger.String("cell", cell),
			)
		}
		return decimal.Zero
	}
	return d
}

// headerIndex maps header names to column positions. The listed
// required columns must all be present; optional columns map to -1.
func headerIndex(header []string, required ...string) (map[string]int, error) {
	idx := map[string]int{
		colName:     -1,
		colURL:      -1,
		colUnitCost: -1,
		colCategory: -1,
		colStockQty: -1,
	}
	for i, h := range header {
		if _, ok := idx[strings.TrimSpace(h)]; ok {
			idx[strings.TrimSpace(h)] = i
		}
	}
	for _, col := range required {
		if idx[col] < 0 {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return idx, nil
}

func valueAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseInt(cell string) int {
	n, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0
	}
	return n
}
