package service

import (
	"context"
	"time"

	"rentfit-reservations/internal/domain"
	"rentfit-reservations/internal/repository"
)

// CreateReservationInput carries the booking request into the lifecycle.
type CreateReservationInput struct {
	ItemID         int64
	CustomerID     int64
	StoreID        int64
	PeriodStart    time.Time
	PeriodEnd      time.Time
	DailyRateCents int64
}

type ReservationService interface {
	Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
	// Approve moves PENDING to APPROVED. Called by the checkout flow on
	// payment confirmation, never routed directly.
	Approve(ctx context.Context, id int64) (*domain.Reservation, error)
	// Cancel consults the cancellation policy before transitioning;
	// rejections surface as *domain.CancellationClosedError.
	Cancel(ctx context.Context, id int64, now time.Time) (*domain.Reservation, error)
	// MarkReturned moves APPROVED to RETURNED and releases the interval.
	// Invoked by the expiry sweeper or an explicit return action.
	MarkReturned(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter repository.ReservationFilter) ([]domain.Reservation, error)
}

type AvailabilityService interface {
	// UnavailableRanges returns the item's occupied intervals, restricted
	// to [from, to] when either bound is set.
	UnavailableRanges(ctx context.Context, itemID int64, from, to *time.Time) ([]domain.Interval, error)
	// IsAvailable is advisory; the authoritative check happens inside
	// reservation creation.
	IsAvailable(ctx context.Context, itemID int64, start, end time.Time) (bool, error)
}

type CheckoutService interface {
	Quote(ctx context.Context, customerID int64, reservationIDs []int64) (*domain.Quote, error)
	Checkout(ctx context.Context, customerID int64, reservationIDs []int64) (*domain.PaymentHandle, error)
	// ConfirmPayment approves every reservation in the batch, enumerating
	// the ids that could not be approved.
	ConfirmPayment(ctx context.Context, batchID string) (approved, failed []int64, err error)
}

// PaymentClient is the boundary to the external payment collaborator.
type PaymentClient interface {
	CreateCharge(ctx context.Context, batchID string, amountCents int64, reservationIDs []int64) (paymentURL string, err error)
}

// AlertService delivers operator notifications. Implementations are
// best-effort: failures are logged, never propagated.
type AlertService interface {
	SweepReport(ctx context.Context, processed int, failed []int64)
	PaymentFailure(ctx context.Context, batchID string, cause error)
}
