package service

import (
	"fmt"
	"time"

	"rentfit-reservations/internal/domain"
)

// CancellationWindow is how long after the rental period begins a
// reservation remains cancellable. The anchor is periodStart, not
// createdAt, so reservations booked far in advance stay cancellable
// until one day into their period.
const CancellationWindow = 24 * time.Hour

// CanCancel decides whether a reservation may still be canceled at now.
// A closed window is a business rule, not a fault: the returned reason is
// shown to the customer as-is.
func CanCancel(r *domain.Reservation, now time.Time) (bool, string) {
	deadline := r.PeriodStart.Add(CancellationWindow)
	if now.Before(deadline) {
		return true, ""
	}
	return false, fmt.Sprintf(
		"reservations can no longer be canceled 24 hours after the rental period begins (deadline was %s)",
		deadline.UTC().Format(time.RFC3339),
	)
}
