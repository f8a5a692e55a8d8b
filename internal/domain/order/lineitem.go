package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one (product, attribute, quantity) unit extracted from an
// order's free-text product payload.
type LineItem struct {
	OrderCode string
	Product   string
	Attribute string
	Quantity  int
}

func NewLineItem(orderCode, product, attribute string, quantity int) (LineItem, error) {
	if orderCode == "" || product == "" {
		return LineItem{}, ErrMissingField
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		OrderCode: orderCode,
		Product:   product,
		Attribute: attribute,
		Quantity:  quantity,
	}, nil
}

// MergedItem is a line item aggregated across all orders in a run by
// (product, attribute). UnitCost and URL stay zero until enrichment.
type MergedItem struct {
	Product    string
	Attribute  string
	Quantity   int
	OrderCodes []string
	UnitCost   decimal.Decimal
	URL        string
}

// JoinedCodes renders the contributing order codes in first-seen order,
// semicolon-separated, duplicates preserved.
func (m MergedItem) JoinedCodes() string {
	return strings.Join(m.OrderCodes, ";")
}

// RunSnapshot is the persisted view of one run: the raw records that
// fed it, the decomposed line items, and the merged/enriched items.
type RunSnapshot struct {
	Raw    []RawRecord
	Items  []LineItem
	Merged []MergedItem
}
