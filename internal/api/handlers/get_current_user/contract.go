package get_current_user

import (
	"context"

	"github.com/tomspera05/NH-BookingService/internal/service/accounts/models"
)

type AccountsService interface {
	GetCurrentUser(ctx context.Context, token string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
