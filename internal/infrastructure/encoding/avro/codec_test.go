package avro

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	rec := order.RawRecord{
		Seq:            "1",
		Code:           "A123",
		ItemCount:      2,
		Customer:       "Jane Doe",
		Amount:         decimal.NewFromFloat(1234.50),
		ServiceCharge:  decimal.NewFromFloat(10.00),
		FinalPrice:     decimal.NewFromFloat(1244.50),
		DeliveryStatus: "pending",
		PaymentStatus:  "Paid",
		ProductInfo:    "Shirt | Red | 2\nShirt | Blue | 3",
		Options:        "gift wrap",
	}

	payload, err := codec.Encode(rec)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	decoded, err := codec.Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, rec.Code, decoded.Code)
	assert.Equal(t, rec.ItemCount, decoded.ItemCount)
	assert.Equal(t, rec.Customer, decoded.Customer)
	assert.Equal(t, rec.ProductInfo, decoded.ProductInfo)
	assert.True(t, rec.Amount.Equal(decoded.Amount))
	assert.True(t, rec.FinalPrice.Equal(decoded.FinalPrice))
}

func TestCodec_DecodeGarbage(t *testing.T) {
	codec, err := NewCodec()
	require.NoError(t, err)

	_, err = codec.Decode([]byte{0xff, 0x00, 0x01})

	assert.Error(t, err)
}

func TestFromNative_MissingCode(t *testing.T) {
	_, err := FromNative(map[string]interface{}{
		"seq":    "1",
		"amount": "0",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing order code")
}

func TestFromNative_NotARecord(t *testing.T) {
	_, err := FromNative("not a map")

	assert.Error(t, err)
}
