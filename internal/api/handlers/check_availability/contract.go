package check_availability

import (
	"context"
	"time"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/pkg/types"
)

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, date time.Time, startTime types.TimeString, serviceIDs []string) (*domain.AvailabilityResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
