package catalog

import "github.com/shopspring/decimal"

// Product is one entry of the product catalog. The pipeline only reads
// catalog entries; stock and category metadata pass through untouched.
type Product struct {
	Name     string
	UnitCost decimal.Decimal
	URL      string
	Category string
	StockQty int
}
