package domain

import (
	"time"

	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// AvailabilityResult is the verdict for a requested (date, time) slot.
// Computed per query, never persisted.
type AvailabilityResult struct {
	Available        bool
	AlternativeSlots []types.TimeString
}

// BlockedSlot is a (date, time) pair that cannot be booked,
// representing a pre-existing appointment.
type BlockedSlot struct {
	Date      time.Time
	StartTime types.TimeString
}

// SlotKey builds the canonical "YYYY-MM-DD HH:MM" key for a slot.
func SlotKey(date time.Time, startTime types.TimeString) string {
	return date.Format(DateFormat) + " " + startTime.String()
}
