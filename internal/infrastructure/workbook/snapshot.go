package workbook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

// Run snapshot sheet names: three views over one run.
const (
	sheetRawOrders   = "Raw Orders"
	sheetSplitItems  = "Split Items"
	sheetMergedItems = "Merged Items"
)

var rawHeader = []interface{}{
	"#", "Order Code", "Num. of Products", "Customer", "Amount",
	"Service charge", "Final price", "Delivery Status", "Payment Status",
	"Product Info", "Options",
}

// Store persists run snapshots and the sales history under one
// per-operator data directory. Workbooks are written to a temp file and
// renamed into place, so an aborted run never leaves a partial
// snapshot behind.
type Store struct {
	dir string
	log logger.Logger
}

func NewStore(dir string, log logger.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// WriteRun persists the three views of one run into a multi-sheet
// workbook and returns its final path.
func (s *Store) WriteRun(name string, snap order.RunSnapshot) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.fillRawSheet(f, sheetRawOrders, snap.Raw); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(sheetSplitItems); err != nil {
		return "", fmt.Errorf("create sheet %q: %w", sheetSplitItems, err)
	}
	if err := setRow(f, sheetSplitItems, 1, []interface{}{"Order Code", "Product Name", "Attribute", "Quantity"}); err != nil {
		return "", err
	}
	for i, item := range snap.Items {
		row := []interface{}{item.OrderCode, item.Product, item.Attribute, item.Quantity}
		if err := setRow(f, sheetSplitItems, i+2, row); err != nil {
			return "", err
		}
	}

	if _, err := f.NewSheet(sheetMergedItems); err != nil {
		return "", fmt.Errorf("create sheet %q: %w", sheetMergedItems, err)
	}
	mergedHeader := []interface{}{"Product Name", "Attribute", "Quantity", "Order Codes", "Unit Cost", "Product URL"}
	if err := setRow(f, sheetMergedItems, 1, mergedHeader); err != nil {
		return "", err
	}
	for i, m := range snap.Merged {
		row := []interface{}{
			m.Product, m.Attribute, m.Quantity, m.JoinedCodes(),
			m.UnitCost.InexactFloat64(), m.URL,
		}
		if err := setRow(f, sheetMergedItems, i+2, row); err != nil {
			return "", err
		}
	}

	path, err := s.saveAtomic(f, name)
	if err != nil {
		return "", err
	}
	s.log.Info("run snapshot written",
		logger.String("file", path),
		logger.Int("raw", len(snap.Raw)),
		logger.Int("items", len(snap.Items)),
		logger.Int("merged", len(snap.Merged)),
	)
	return path, nil
}

// WriteRest persists the non-pending records of a seeding run to their
// own single-sheet workbook.
func (s *Store) WriteRest(name string, records []order.RawRecord) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.fillRawSheet(f, sheetRawOrders, records); err != nil {
		return "", err
	}

	path, err := s.saveAtomic(f, name)
	if err != nil {
		return "", err
	}
	s.log.Info("rest snapshot written",
		logger.String("file", path),
		logger.Int("raw", len(records)),
	)
	return path, nil
}

func (s *Store) fillRawSheet(f *excelize.File, sheet string, records []order.RawRecord) error {
	// excelize names the implicit first sheet "Sheet1"; rename it so
	// every workbook starts with the raw view.
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, sheet, 1, rawHeader); err != nil {
		return err
	}
	for i, rec := range records {
		row := []interface{}{
			rec.Seq, rec.Code, rec.ItemCount, rec.Customer,
			rec.Amount.InexactFloat64(), rec.ServiceCharge.InexactFloat64(),
			rec.FinalPrice.InexactFloat64(), rec.DeliveryStatus,
			rec.PaymentStatus, rec.ProductInfo, rec.Options,
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// saveAtomic writes the workbook to a temp file in the data dir and
// renames it over the final name.
func (s *Store) saveAtomic(f *excelize.File, name string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".snapshot-*.xlsx")
	if err != nil {
		return "", fmt.Errorf("create temp workbook: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	if err := f.SaveAs(tmpName); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("save workbook: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("commit workbook %s: %w", path, err)
	}
	return path, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
