package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/repository"
)

type checkoutRepository struct {
	db *sql.DB
}

func NewCheckoutRepository(db *sql.DB) repository.CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) CreateBatch(ctx context.Context, batch *domain.CheckoutBatch, reservationIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create batch: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO checkout_batches (id, customer_id, subtotal_cents, fee_cents, total_cents, status, created_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_on`,
		batch.ID, batch.CustomerID, batch.SubtotalCents, batch.FeeCents, batch.TotalCents, batch.Status, time.Now().UTC(),
	).Scan(&batch.CreatedOn)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	for _, id := range reservationIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO checkout_batch_items (batch_id, reservation_id) VALUES ($1, $2)`,
			batch.ID, id,
		); err != nil {
			return fmt.Errorf("insert batch item %d: %w", id, err)
		}
	}

	return tx.Commit()
}

func (r *checkoutRepository) GetBatch(ctx context.Context, id string) (*domain.CheckoutBatch, []int64, error) {
	batch := &domain.CheckoutBatch{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, subtotal_cents, fee_cents, total_cents, status, created_on FROM checkout_batches WHERE id = $1`,
		id,
	).Scan(&batch.ID, &batch.CustomerID, &batch.SubtotalCents, &batch.FeeCents, &batch.TotalCents, &batch.Status, &batch.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT reservation_id FROM checkout_batch_items WHERE batch_id = $1 ORDER BY reservation_id`,
		id,
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var rid int64
		if err := rows.Scan(&rid); err != nil {
			return nil, nil, err
		}
		ids = append(ids, rid)
	}
	return batch, ids, rows.Err()
}

func (r *checkoutRepository) UpdateBatchStatus(ctx context.Context, id string, status domain.BatchStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE checkout_batches SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
