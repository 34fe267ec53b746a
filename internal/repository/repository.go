package repository

import (
	"context"
	"time"

	"rentfit-reservations/internal/domain"
)

// ReservationFilter narrows List to one customer or one store, optionally
// by status. At least one of CustomerID/StoreID must be set.
type ReservationFilter struct {
	CustomerID *int64
	StoreID    *int64
	Status     domain.ReservationStatus
}

type ReservationRepository interface {
	// Create atomically checks the item's committed intervals for overlap
	// and persists the reservation together with its interval entry.
	// Returns domain.ErrConflict when the period overlaps; in that case
	// nothing is written.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// Transition moves the reservation to the target status iff its current
	// status is one of from, releasing the interval entry when the target is
	// terminal. Returns domain.ErrNotFound for unknown ids and
	// domain.ErrInvalidTransition when the guard does not match.
	Transition(ctx context.Context, id int64, from []domain.ReservationStatus, to domain.ReservationStatus) (*domain.Reservation, error)
	SetDepositPaid(ctx context.Context, id int64, paid bool) error
	List(ctx context.Context, filter ReservationFilter) ([]domain.Reservation, error)
	// ListExpiredApproved returns ids of APPROVED reservations whose period
	// ended before asOf, capped at limit. Used by the expiry sweeper.
	ListExpiredApproved(ctx context.Context, asOf time.Time, limit int) ([]int64, error)
}

type IntervalRepository interface {
	// ListOccupied returns the item's committed intervals ordered by start date.
	ListOccupied(ctx context.Context, itemID int64) ([]domain.Interval, error)
}

type CheckoutRepository interface {
	CreateBatch(ctx context.Context, batch *domain.CheckoutBatch, reservationIDs []int64) error
	// GetBatch returns the batch and the reservation ids it covers.
	GetBatch(ctx context.Context, id string) (*domain.CheckoutBatch, []int64, error)
	UpdateBatchStatus(ctx context.Context, id string, status domain.BatchStatus) error
}
