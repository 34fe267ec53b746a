package domain

import "time"

// Interval is an occupied [Start, End] date range held by one
// non-terminal reservation of an item.
type Interval struct {
	ReservationID int64     `json:"reservation_id"`
	ItemID        int64     `json:"item_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
}

// Overlaps reports whether [start, end] overlaps the interval under the
// inclusive-boundary rule: a shared boundary day counts as double occupancy.
func (iv Interval) Overlaps(start, end time.Time) bool {
	return !iv.Start.After(end) && !start.After(iv.End)
}
