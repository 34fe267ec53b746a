package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound means the reservation (or batch) id is unknown to this store.
	ErrNotFound = errors.New("reservation not found")

	// ErrConflict means the requested date range overlaps an interval
	// already committed by a PENDING or APPROVED reservation.
	ErrConflict = errors.New("requested period conflicts with an existing reservation")

	// ErrDateRangeInvalid means the period failed validation
	// (end before start, or a retroactive start date).
	ErrDateRangeInvalid = errors.New("invalid date range")

	// ErrInvalidTransition means the reservation is not in a status the
	// requested transition is allowed from.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidSelection means a checkout selection referenced a
	// reservation that is missing, not PENDING, or owned by someone else.
	ErrInvalidSelection = errors.New("invalid checkout selection")
)

// CancellationClosedError is a business-rule rejection, not a system fault.
// Reason is surfaced verbatim to the end customer.
type CancellationClosedError struct {
	Reason   string
	Deadline time.Time
}

func (e *CancellationClosedError) Error() string {
	return fmt.Sprintf("cancellation window closed: %s", e.Reason)
}
