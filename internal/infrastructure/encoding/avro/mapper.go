package avro

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
)

// ToNative converts a domain record into the map form goavro encodes.
func ToNative(rec order.RawRecord) map[string]interface{} {
	return map[string]interface{}{
		"seq":             rec.Seq,
		"code":            rec.Code,
		"item_count":      rec.ItemCount,
		"customer":        rec.Customer,
		"amount":          rec.Amount.String(),
		"service_charge":  rec.ServiceCharge.String(),
		"final_price":     rec.FinalPrice.String(),
		"delivery_status": rec.DeliveryStatus,
		"payment_status":  rec.PaymentStatus,
		"product_info":    rec.ProductInfo,
		"options":         rec.Options,
	}
}

// FromNative rebuilds a domain record from decoded Avro data.
func FromNative(native interface{}) (order.RawRecord, error) {
	data, ok := native.(map[string]interface{})
	if !ok {
		return order.RawRecord{}, fmt.Errorf("avro payload is not a record")
	}

	rec := order.RawRecord{
		Seq:            stringField(data, "seq"),
		Code:           stringField(data, "code"),
		ItemCount:      intField(data, "item_count"),
		Customer:       stringField(data, "customer"),
		DeliveryStatus: stringField(data, "delivery_status"),
		PaymentStatus:  stringField(data, "payment_status"),
		ProductInfo:    stringField(data, "product_info"),
		Options:        stringField(data, "options"),
	}
	if rec.Code == "" {
		return order.RawRecord{}, fmt.Errorf("avro payload missing order code")
	}

	var err error
	if rec.Amount, err = decimalField(data, "amount"); err != nil {
		return order.RawRecord{}, err
	}
	if rec.ServiceCharge, err = decimalField(data, "service_charge"); err != nil {
		return order.RawRecord{}, err
	}
	if rec.FinalPrice, err = decimalField(data, "final_price"); err != nil {
		return order.RawRecord{}, err
	}
	return rec, nil
}

func stringField(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}

func intField(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	default:
		return 0
	}
}

func decimalField(data map[string]interface{}, key string) (decimal.Decimal, error) {
	s, _ := data[key].(string)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("avro field %s: invalid decimal %q", key, s)
	}
	return d, nil
}
