package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending  ReservationStatus = "PENDING"
	ReservationStatusApproved ReservationStatus = "APPROVED"
	ReservationStatusReturned ReservationStatus = "RETURNED"
	ReservationStatusCanceled ReservationStatus = "CANCELED"
)

// Terminal reports whether no further transitions are permitted from s.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusReturned || s == ReservationStatusCanceled
}

// Valid reports whether s is one of the four known statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusApproved, ReservationStatusReturned, ReservationStatusCanceled:
		return true
	}
	return false
}

// Reservation is a customer's claim on an item for an inclusive date range.
// Status is owned by the reservation service; nothing else writes it.
type Reservation struct {
	ID         int64 `json:"id"`
	ItemID     int64 `json:"item_id"`
	CustomerID int64 `json:"customer_id"`
	StoreID    int64 `json:"store_id"`
	// PeriodStart and PeriodEnd are calendar dates (UTC midnight),
	// inclusive on both ends. PeriodStart <= PeriodEnd always holds.
	PeriodStart     time.Time         `json:"period_start"`
	PeriodEnd       time.Time         `json:"period_end"`
	DailyRateCents  int64             `json:"daily_rate_cents"`
	TotalPriceCents int64             `json:"total_price_cents"`
	Status          ReservationStatus `json:"status"`
	DepositPaid     bool              `json:"deposit_paid"`
	CreatedOn       time.Time         `json:"created_on"`
	UpdatedOn       time.Time         `json:"updated_on"`
}
