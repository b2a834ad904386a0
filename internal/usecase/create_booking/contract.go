package create_booking

import (
	"context"

	"github.com/tomspera05/NH-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	// GetByIDs возвращает услуги по списку идентификаторов, сохраняя порядок запроса
	GetByIDs(ids []string) ([]domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator генерирует уникальные идентификаторы бронирований
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
