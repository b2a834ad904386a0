package list_services

import "github.com/tomspera05/NH-BookingService/internal/domain"

type ServiceCatalog interface {
	All() []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
