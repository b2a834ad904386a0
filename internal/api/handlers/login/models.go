package login

import "github.com/tomspera05/NH-BookingService/internal/service/accounts/models"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *LoginRequest) ToServiceRequest() *models.LoginRequest {
	return &models.LoginRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}
