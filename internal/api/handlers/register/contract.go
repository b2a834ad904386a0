package register

import (
	"context"

	"github.com/tomspera05/NH-BookingService/internal/service/accounts/models"
)

type AccountsService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
