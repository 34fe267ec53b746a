package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/repository"
)

const reservationColumns = `id, item_id, customer_id, store_id, period_start, period_end, daily_rate_cents, total_price_cents, status, deposit_paid, created_on, updated_on`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, rt *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create reservation: %w", err)
	}
	defer tx.Rollback()

	// Serialize concurrent bookings per item without blocking other items.
	// The lock is transaction-scoped, so it covers both the overlap check
	// and the inserts below.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, rt.ItemID); err != nil {
		return fmt.Errorf("acquire item lock: %w", err)
	}

	var occupied bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM reservation_intervals WHERE item_id = $1 AND period_start <= $3 AND period_end >= $2)`,
		rt.ItemID, rt.PeriodStart, rt.PeriodEnd,
	).Scan(&occupied)
	if err != nil {
		return fmt.Errorf("check interval overlap: %w", err)
	}
	if occupied {
		return domain.ErrConflict
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO reservations (item_id, customer_id, store_id, period_start, period_end, daily_rate_cents, total_price_cents, status, deposit_paid, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id, created_on, updated_on`,
		rt.ItemID, rt.CustomerID, rt.StoreID, rt.PeriodStart, rt.PeriodEnd, rt.DailyRateCents, rt.TotalPriceCents, rt.Status, rt.DepositPaid, time.Now().UTC(),
	).Scan(&rt.ID, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO reservation_intervals (reservation_id, item_id, period_start, period_end) VALUES ($1, $2, $3, $4)`,
		rt.ID, rt.ItemID, rt.PeriodStart, rt.PeriodEnd,
	); err != nil {
		return fmt.Errorf("insert interval: %w", err)
	}

	return tx.Commit()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	rt := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.ItemID, &rt.CustomerID, &rt.StoreID, &rt.PeriodStart, &rt.PeriodEnd,
		&rt.DailyRateCents, &rt.TotalPriceCents, &rt.Status, &rt.DepositPaid, &rt.CreatedOn, &rt.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *reservationRepository) Transition(ctx context.Context, id int64, from []domain.ReservationStatus, to domain.ReservationStatus) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transition: %w", err)
	}
	defer tx.Rollback()

	guard := make([]string, len(from))
	for i, s := range from {
		guard[i] = string(s)
	}

	rt := &domain.Reservation{}
	err = tx.QueryRowContext(ctx,
		`UPDATE reservations SET status = $2, updated_on = $3 WHERE id = $1 AND status = ANY($4)
		 RETURNING `+reservationColumns,
		id, to, time.Now().UTC(), pq.Array(guard),
	).Scan(
		&rt.ID, &rt.ItemID, &rt.CustomerID, &rt.StoreID, &rt.PeriodStart, &rt.PeriodEnd,
		&rt.DailyRateCents, &rt.TotalPriceCents, &rt.Status, &rt.DepositPaid, &rt.CreatedOn, &rt.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		// Guard missed: distinguish an unknown id from a wrong-state one.
		var current string
		probeErr := tx.QueryRowContext(ctx, `SELECT status FROM reservations WHERE id = $1`, id).Scan(&current)
		if errors.Is(probeErr, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if probeErr != nil {
			return nil, probeErr
		}
		return nil, domain.ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}

	// Terminal statuses release the committed interval. Deleting an
	// already-released row affects nothing, which keeps release idempotent
	// when a sweep and a cancel race on the same reservation.
	if to.Terminal() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reservation_intervals WHERE reservation_id = $1`, id); err != nil {
			return nil, fmt.Errorf("release interval: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *reservationRepository) SetDepositPaid(ctx context.Context, id int64, paid bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET deposit_paid = $2, updated_on = $3 WHERE id = $1`,
		id, paid, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reservationRepository) List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.CustomerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, *filter.CustomerID)
		argIdx++
	}
	if filter.StoreID != nil {
		query += fmt.Sprintf(" AND store_id = $%d", argIdx)
		args = append(args, *filter.StoreID)
		argIdx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	query += " ORDER BY created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var rt domain.Reservation
		if err := rows.Scan(
			&rt.ID, &rt.ItemID, &rt.CustomerID, &rt.StoreID, &rt.PeriodStart, &rt.PeriodEnd,
			&rt.DailyRateCents, &rt.TotalPriceCents, &rt.Status, &rt.DepositPaid, &rt.CreatedOn, &rt.UpdatedOn,
		); err != nil {
			return nil, err
		}
		reservations = append(reservations, rt)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) ListExpiredApproved(ctx context.Context, asOf time.Time, limit int) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM reservations WHERE status = $1 AND period_end < $2 ORDER BY period_end LIMIT $3`,
		domain.ReservationStatusApproved, asOf, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
