package accounts

import (
	"context"

	"github.com/tomspera05/NH-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	Create(ctx context.Context, token string, userEmail string) error
	GetUserEmail(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// TokenGenerator генерирует уникальные токены сессий
type TokenGenerator interface {
	NewToken() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
