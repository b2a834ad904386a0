package models

import (
	"time"

	"github.com/tomspera05/NH-BookingService/internal/domain"
)

// BookingResponse бронирование в формате ответа API
type BookingResponse struct {
	ID        string            `json:"id"`
	UserEmail string            `json:"userEmail"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Services  []ServiceResponse `json:"services"`
	CreatedAt string            `json:"createdAt"`
}

// ServiceResponse услуга в составе бронирования
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Subtitle        *string `json:"subtitle,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	services := make([]ServiceResponse, len(booking.Services))
	for i, s := range booking.Services {
		services[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Subtitle:        s.Subtitle,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &BookingResponse{
		ID:        booking.ID,
		UserEmail: booking.UserEmail,
		Date:      booking.Date.Format(domain.DateFormat),
		Time:      booking.StartTime.String(),
		Services:  services,
		CreatedAt: booking.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result}
}
