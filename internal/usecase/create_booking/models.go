package create_booking

import (
	"time"

	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserEmail  string           // Email пользователя (из сессии)
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала (например, "10:00")
	ServiceIDs []string         // Идентификаторы выбранных услуг (непустой список)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string            // ID созданного бронирования
	UserEmail string            // Email пользователя
	Date      time.Time         // Дата бронирования
	StartTime types.TimeString  // Время начала
	Services  []ServiceResponse // Состав заказа в порядке выбора
	CreatedAt time.Time         // Время создания записи
}

// ServiceResponse услуга в составе созданного бронирования
type ServiceResponse struct {
	ID              string
	Name            string
	Subtitle        *string
	DurationMinutes int
}
