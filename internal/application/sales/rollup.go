package sales

import (
	"github.com/shopspring/decimal"

	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
)

// RunTotals is the financial rollup of one ingestion run.
type RunTotals struct {
	Amount        decimal.Decimal
	ServiceCharge decimal.Decimal
	Revenue       decimal.Decimal
	Cost          decimal.Decimal
	Profit        decimal.Decimal
}

// Rollup computes the per-run totals. Revenue sums the final price of
// the raw records feeding the run (each record contributes once, no
// matter how many line items it produced); cost sums unit cost times
// merged quantity. Profit is rounded to 2 decimal places here, at the
// point of computation, so cumulative sums stay exact relative to the
// rounding policy.
func Rollup(enriched []order.MergedItem, raw []order.RawRecord) RunTotals {
	t := RunTotals{
		Amount:        decimal.Zero,
		ServiceCharge: decimal.Zero,
		Revenue:       decimal.Zero,
		Cost:          decimal.Zero,
	}

	for _, rec := range raw {
		t.Amount = t.Amount.Add(rec.Amount)
		t.ServiceCharge = t.ServiceCharge.Add(rec.ServiceCharge)
		t.Revenue = t.Revenue.Add(rec.FinalPrice)
	}

	for _, m := range enriched {
		t.Cost = t.Cost.Add(m.UnitCost.Mul(decimal.NewFromInt(int64(m.Quantity))))
	}

	t.Profit = t.Revenue.Sub(t.Cost).Round(2)
	return t
}

// ClassTotals is one appended row of a first-run sales log, keyed by
// run date.
type ClassTotals struct {
	Date          string
	Amount        decimal.Decimal
	ServiceCharge decimal.Decimal
	FinalPrice    decimal.Decimal
}

// TotalsFor summarizes one class of raw records (pending or rest) for
// the first-run sales logs.
func TotalsFor(date string, records []order.RawRecord) ClassTotals {
	t := ClassTotals{
		Date:          date,
		Amount:        decimal.Zero,
		ServiceCharge: decimal.Zero,
		FinalPrice:    decimal.Zero,
	}
	for _, rec := range records {
		t.Amount = t.Amount.Add(rec.Amount)
		t.ServiceCharge = t.ServiceCharge.Add(rec.ServiceCharge)
		t.FinalPrice = t.FinalPrice.Add(rec.FinalPrice)
	}
	return t
}
