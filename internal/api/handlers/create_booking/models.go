package create_booking

import (
	"time"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	createBooking "github.com/tomspera05/NH-BookingService/internal/usecase/create_booking"
	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	ServiceIDs []string `json:"serviceIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Email пользователя берется из сессии, а не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userEmail string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserEmail:  userEmail,
		Date:       date,
		StartTime:  types.TimeString(r.Time),
		ServiceIDs: r.ServiceIDs,
	}, nil
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string            `json:"id"`
	UserEmail string            `json:"userEmail"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Services  []ServiceResponse `json:"services"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ServiceResponse услуга в составе бронирования
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Subtitle        *string `json:"subtitle,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	services := make([]ServiceResponse, 0, len(resp.Services))
	for _, s := range resp.Services {
		services = append(services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Subtitle:        s.Subtitle,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return &BookingResponse{
		ID:        resp.ID,
		UserEmail: resp.UserEmail,
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.StartTime.String(),
		Services:  services,
		CreatedAt: resp.CreatedAt,
	}
}
