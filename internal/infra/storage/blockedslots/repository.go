package blockedslots

import (
	"context"
	"time"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// defaultBlockedSlots фиксированная таблица занятых слотов
// Представляет уже существующие записи в расписании мастера
// Формат ключа: "YYYY-MM-DD HH:MM"
var defaultBlockedSlots = []string{
	"2025-11-14 10:00",
	"2025-11-14 14:00",
	"2025-11-14 16:30",
	"2025-11-15 11:00",
	"2025-11-15 15:00",
}

// Repository in-memory репозиторий занятых слотов
// Таблица задается при старте процесса и не редактируется пользователями,
// поэтому хранение в памяти достаточно
type Repository struct {
	blocked map[string]struct{}
}

// NewRepository создает репозиторий с таблицей занятых слотов по умолчанию
func NewRepository() *Repository {
	return NewRepositoryWithSlots(defaultBlockedSlots)
}

// NewRepositoryWithSlots создает репозиторий с переданной таблицей занятых слотов
func NewRepositoryWithSlots(slots []string) *Repository {
	blocked := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		blocked[s] = struct{}{}
	}
	return &Repository{blocked: blocked}
}

// IsBlocked проверяет, занят ли слот (date, startTime)
func (r *Repository) IsBlocked(ctx context.Context, date time.Time, startTime types.TimeString) (bool, error) {
	_, ok := r.blocked[domain.SlotKey(date, startTime)]
	return ok, nil
}

// GetByDate возвращает занятые слоты на указанную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	prefix := date.Format(domain.DateFormat) + " "

	result := make([]types.TimeString, 0)
	for key := range r.blocked {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			result = append(result, types.TimeString(key[len(prefix):]))
		}
	}

	return result, nil
}
