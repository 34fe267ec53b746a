package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestReservationStatus(t *testing.T) {
	t.Run("Terminal statuses", func(t *testing.T) {
		assert.False(t, ReservationStatusPending.Terminal())
		assert.False(t, ReservationStatusApproved.Terminal())
		assert.True(t, ReservationStatusReturned.Terminal())
		assert.True(t, ReservationStatusCanceled.Terminal())
	})

	t.Run("Valid statuses", func(t *testing.T) {
		assert.True(t, ReservationStatusPending.Valid())
		assert.True(t, ReservationStatusCanceled.Valid())
		assert.False(t, ReservationStatus("SHIPPED").Valid())
		assert.False(t, ReservationStatus("").Valid())
	})
}

func TestIntervalOverlaps(t *testing.T) {
	iv := Interval{ReservationID: 1, ItemID: 7, Start: d(2030, 1, 10), End: d(2030, 1, 12)}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{"Disjoint before", d(2030, 1, 1), d(2030, 1, 9), false},
		{"Disjoint after", d(2030, 1, 13), d(2030, 1, 20), false},
		{"Touching end day", d(2030, 1, 12), d(2030, 1, 14), true},
		{"Touching start day", d(2030, 1, 8), d(2030, 1, 10), true},
		{"Contained", d(2030, 1, 11), d(2030, 1, 11), true},
		{"Containing", d(2030, 1, 1), d(2030, 1, 31), true},
		{"Identical", d(2030, 1, 10), d(2030, 1, 12), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, iv.Overlaps(tt.start, tt.end))
		})
	}
}
