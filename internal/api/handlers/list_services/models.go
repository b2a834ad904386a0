package list_services

import "github.com/tomspera05/NH-BookingService/internal/domain"

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Subtitle        *string `json:"subtitle,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует доменные модели в HTTP ответ
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Subtitle:        s.Subtitle,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return &ServiceListResponse{Services: result}
}
