package order

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cell positions of the remote listing table. Only the normalizer may
// index rows by position; everything downstream works on RawRecord.
const (
	cellSeq = iota
	cellOrderCode
	cellItemCount
	cellCustomer
	cellAmount
	cellServiceCharge
	cellFinalPrice
	cellDeliveryStatus
	cellPaymentStatus
	cellProductInfo
	cellOptions
)

// StatusPending is the only delivery status with sync-affecting meaning:
// it drives the pending/rest split and the resumability checkpoint.
const StatusPending = "pending"

// RawRecord is one normalized row of the seller-orders listing.
// It is immutable after normalization and lives only for the duration
// of a run, except where persisted into the raw audit snapshot.
type RawRecord struct {
	Seq            string
	Code           string
	ItemCount      int
	Customer       string
	Amount         decimal.Decimal
	ServiceCharge  decimal.Decimal
	FinalPrice     decimal.Decimal
	DeliveryStatus string
	PaymentStatus  string
	ProductInfo    string
	Options        string
}

// NormalizeRow converts an ordered list of scraped text cells into a
// RawRecord. Missing cells and unparseable numbers default to zero
// values; normalization never fails a row.
func NormalizeRow(cells []string) RawRecord {
	return RawRecord{
		Seq:            cellAt(cells, cellSeq),
		Code:           cellAt(cells, cellOrderCode),
		ItemCount:      parseCount(cellAt(cells, cellItemCount)),
		Customer:       cellAt(cells, cellCustomer),
		Amount:         parseMoney(cellAt(cells, cellAmount)),
		ServiceCharge:  parseMoney(cellAt(cells, cellServiceCharge)),
		FinalPrice:     parseMoney(cellAt(cells, cellFinalPrice)),
		DeliveryStatus: cellAt(cells, cellDeliveryStatus),
		PaymentStatus:  cellAt(cells, cellPaymentStatus),
		ProductInfo:    cellAt(cells, cellProductInfo),
		Options:        cellAt(cells, cellOptions),
	}
}

// IsPending matches the delivery status case-insensitively.
func (r RawRecord) IsPending() bool {
	return strings.EqualFold(strings.TrimSpace(r.DeliveryStatus), StatusPending)
}

func cellAt(cells []string, idx int) string {
	if idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// parseMoney strips currency decoration ("$1,234.50") and parses the
// rest as a decimal, defaulting to zero on failure.
func parseMoney(cell string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(cell, "$", ""), ",", "")
	d, err := decimal.NewFromString(strings.TrimSpace(cleaned))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseCount(cell string) int {
	n, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0
	}
	return n
}
