package load_more_slots

import (
	"context"
	"time"

	"github.com/tomspera05/NH-BookingService/pkg/types"
)

type AvailabilityService interface {
	LoadMoreSlots(ctx context.Context, date time.Time, currentSlots []types.TimeString, additionalCount int) ([]types.TimeString, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
