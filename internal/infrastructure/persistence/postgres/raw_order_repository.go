package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "github.com/Samuel-ncu/goshopsync/internal/domain/order"
)

// RawOrderRepository mirrors ingested raw records into Postgres for
// downstream lookups. Re-ingesting an order code upserts, so an aborted
// run that publishes the same records twice stays harmless.
type RawOrderRepository struct {
	pool *pgxpool.Pool
}

func NewRawOrderRepository(pool *pgxpool.Pool) *RawOrderRepository {
	return &RawOrderRepository{pool: pool}
}

func (r *RawOrderRepository) Save(ctx context.Context, rec *domain.RawRecord) error {
	if rec == nil {
		return fmt.Errorf("record is nil")
	}

	const query = `
		INSERT INTO raw_orders (
			code, item_count, customer, amount, service_charge,
			final_price, delivery_status, payment_status, product_info,
			options, ingested_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (code) DO UPDATE
		SET item_count = EXCLUDED.item_count,
			customer = EXCLUDED.customer,
			amount = EXCLUDED.amount,
			service_charge = EXCLUDED.service_charge,
			final_price = EXCLUDED.final_price,
			delivery_status = EXCLUDED.delivery_status,
			payment_status = EXCLUDED.payment_status,
			product_info = EXCLUDED.product_info,
			options = EXCLUDED.options,
			ingested_at = EXCLUDED.ingested_at;
	`

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	// Money travels as strings; pgx has no codec for decimal.Decimal
	// and NUMERIC accepts the textual form losslessly.
	_, err := r.pool.Exec(ctx, query,
		rec.Code,
		rec.ItemCount,
		rec.Customer,
		rec.Amount.String(),
		rec.ServiceCharge.String(),
		rec.FinalPrice.String(),
		rec.DeliveryStatus,
		rec.PaymentStatus,
		rec.ProductInfo,
		rec.Options,
		time.Now().UTC(),
	)
	return err
}

func (r *RawOrderRepository) FindByCode(ctx context.Context, code string) (*domain.RawRecord, error) {
	const query = `
		SELECT code, item_count, customer, amount::text, service_charge::text,
			final_price::text, delivery_status, payment_status, product_info,
			options
		FROM raw_orders
		WHERE code = $1;
	`
	var (
		rec                               domain.RawRecord
		amount, serviceCharge, finalPrice string
	)
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&rec.Code,
		&rec.ItemCount,
		&rec.Customer,
		&amount,
		&serviceCharge,
		&finalPrice,
		&rec.DeliveryStatus,
		&rec.PaymentStatus,
		&rec.ProductInfo,
		&rec.Options,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if rec.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("order %s: invalid amount %q: %w", code, amount, err)
	}
	if rec.ServiceCharge, err = decimal.NewFromString(serviceCharge); err != nil {
		return nil, fmt.Errorf("order %s: invalid service charge %q: %w", code, serviceCharge, err)
	}
	if rec.FinalPrice, err = decimal.NewFromString(finalPrice); err != nil {
		return nil, fmt.Errorf("order %s: invalid final price %q: %w", code, finalPrice, err)
	}
	return &rec, nil
}

func (r *RawOrderRepository) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS raw_orders (
			code TEXT PRIMARY KEY,
			item_count INT NOT NULL,
			customer TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			service_charge NUMERIC NOT NULL,
			final_price NUMERIC NOT NULL,
			delivery_status TEXT NOT NULL,
			payment_status TEXT NOT NULL,
			product_info TEXT NOT NULL,
			options TEXT NOT NULL,
			ingested_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := r.pool.Exec(ctx, stmt)
	return err
}
