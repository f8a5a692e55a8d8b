package avro

import (
	"fmt"
	"sync"

	"github.com/linkedin/goavro/v2"

	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
)

// Codec wraps a goavro codec for thread-safe record encoding.
type Codec struct {
	codec *goavro.Codec
	mu    sync.Mutex
}

// NewCodec builds a codec for the raw-order schema.
func NewCodec() (*Codec, error) {
	codec, err := goavro.NewCodec(RawOrderSchema)
	if err != nil {
		return nil, fmt.Errorf("create avro codec: %w", err)
	}
	return &Codec{codec: codec}, nil
}

// Encode converts a raw record to Avro binary.
func (c *Codec) Encode(rec order.RawRecord) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	binary, err := c.codec.BinaryFromNative(nil, ToNative(rec))
	if err != nil {
		return nil, fmt.Errorf("encode order %s: %w", rec.Code, err)
	}
	return binary, nil
}

// Decode converts Avro binary back to a raw record.
func (c *Codec) Decode(payload []byte) (order.RawRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	native, _, err := c.codec.NativeFromBinary(payload)
	if err != nil {
		return order.RawRecord{}, fmt.Errorf("decode avro payload: %w", err)
	}
	return FromNative(native)
}
