package models

import (
	"time"

	"github.com/tomspera05/NH-BookingService/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string
	Password string
}

// UserResponse данные пользователя без пароля
type UserResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// AuthResponse результат успешной регистрации или входа
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain.User в UserResponse
// Пароль в ответ не включается
func FromDomainUser(user *domain.User) UserResponse {
	return UserResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
