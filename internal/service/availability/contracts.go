package availability

import (
	"context"
	"time"

	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// BlockedSlotRepository интерфейс репозитория занятых слотов
type BlockedSlotRepository interface {
	// IsBlocked проверяет, занят ли слот (date, startTime)
	IsBlocked(ctx context.Context, date time.Time, startTime types.TimeString) (bool, error)
	// GetByDate возвращает занятые слоты на указанную дату
	GetByDate(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
