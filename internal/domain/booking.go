package domain

import (
	"time"

	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// Booking represents a confirmed appointment in the ledger.
// Bookings are append-only: never mutated or deleted in current scope.
type Booking struct {
	ID        string
	UserEmail string
	Date      time.Time
	StartTime types.TimeString
	Services  []Service // non-empty, in selection order
	CreatedAt time.Time
}

// BelongsTo returns true if the booking was made by the given user.
func (b *Booking) BelongsTo(email string) bool {
	return b.UserEmail == email
}
