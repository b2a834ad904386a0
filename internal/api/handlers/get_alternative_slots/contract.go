package get_alternative_slots

import (
	"context"
	"time"

	"github.com/tomspera05/NH-BookingService/pkg/types"
)

type AvailabilityService interface {
	GetAlternativeSlots(ctx context.Context, date time.Time, limit int) ([]types.TimeString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
