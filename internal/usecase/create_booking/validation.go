package create_booking

import (
	"fmt"

	"github.com/tomspera05/NH-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Непустой список услуг - инвариант бронирования, проверяется до записи
func validateRequest(req *Request) error {
	if req.UserEmail == "" {
		return fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: too many services, max %d", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	return nil
}
