package repository

import (
	"context"

	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
)

// RawOrderRepository is the audit mirror of ingested raw records.
type RawOrderRepository interface {
	Save(ctx context.Context, rec *order.RawRecord) error
	FindByCode(ctx context.Context, code string) (*order.RawRecord, error)
}
