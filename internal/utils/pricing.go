package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// PlatformFeePercent is the fixed marketplace fee applied on checkout.
const PlatformFeePercent = 10

// ParseDate converts a yyyy-mm-dd string into a UTC-midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date in the yyyy-mm-dd wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current calendar date at UTC midnight.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RentalDays counts the days in [start, end] inclusive of both ends:
// a same-day rental is 1 day, Jan 1 to Jan 3 is 3 days.
// Callers validate start <= end first.
func RentalDays(start, end time.Time) int64 {
	days := int64(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPriceCents computes the reservation price snapshot at creation time.
func TotalPriceCents(dailyRateCents int64, start, end time.Time) int64 {
	return dailyRateCents * RentalDays(start, end)
}

// QuoteTotals applies the platform fee to a checkout subtotal.
func QuoteTotals(subtotalCents int64) (feeCents, totalCents int64) {
	feeCents = subtotalCents * PlatformFeePercent / 100
	return feeCents, subtotalCents + feeCents
}
