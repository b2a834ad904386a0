package catalog

import (
	"errors"
	"fmt"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/pkg/ptr"
)

var (
	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")
)

// services фиксированный список услуг салона
// Порядок соответствует порядку отображения в приложении
var services = []domain.Service{
	{ID: "1", Name: "TAGLIO UOMO", DurationMinutes: 30},
	{ID: "2", Name: "SAGOMATURA BARBA + TAGLIO", DurationMinutes: 45},
	{ID: "3", Name: "TAGLIO BIMBO", Subtitle: ptr.Ptr("BIMBO SOTTO I 10 ANNI"), DurationMinutes: 20},
	{ID: "4", Name: "COMBO BARBA + TAGLIO", DurationMinutes: 50},
	{ID: "5", Name: "COLORE", DurationMinutes: 60},
	{ID: "6", Name: "PIEGA", DurationMinutes: 30},
	{ID: "7", Name: "TAGLIO DONNA", DurationMinutes: 40},
	{ID: "8", Name: "TRATTAMENTO", DurationMinutes: 45},
}

// Catalog статический каталог услуг салона
// Данные задаются при старте процесса и не изменяются
type Catalog struct {
	services []domain.Service
	byID     map[string]domain.Service
}

// New создает каталог с фиксированным списком услуг
func New() *Catalog {
	byID := make(map[string]domain.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return &Catalog{
		services: services,
		byID:     byID,
	}
}

// All возвращает все услуги в порядке каталога
func (c *Catalog) All() []domain.Service {
	result := make([]domain.Service, len(c.services))
	copy(result, c.services)
	return result
}

// GetByID возвращает услугу по её идентификатору
func (c *Catalog) GetByID(id string) (*domain.Service, error) {
	s, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, id)
	}
	return &s, nil
}

// GetByIDs возвращает услуги по списку идентификаторов,
// сохраняя порядок запроса
func (c *Catalog) GetByIDs(ids []string) ([]domain.Service, error) {
	result := make([]domain.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := c.byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, id)
		}
		result = append(result, s)
	}
	return result, nil
}
