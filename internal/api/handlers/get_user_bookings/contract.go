package get_user_bookings

import (
	"context"

	"github.com/tomspera05/NH-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, userEmail string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
