package postgres

import (
	"context"
	"database/sql"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/repository"
)

type intervalRepository struct {
	db *sql.DB
}

func NewIntervalRepository(db *sql.DB) repository.IntervalRepository {
	return &intervalRepository{db: db}
}

func (r *intervalRepository) ListOccupied(ctx context.Context, itemID int64) ([]domain.Interval, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT reservation_id, item_id, period_start, period_end FROM reservation_intervals WHERE item_id = $1 ORDER BY period_start`,
		itemID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []domain.Interval
	for rows.Next() {
		var iv domain.Interval
		if err := rows.Scan(&iv.ReservationID, &iv.ItemID, &iv.Start, &iv.End); err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}
