package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// Service сервис проверки доступности слотов
// Результат детерминированно зависит только от даты и таблицы занятых слотов
type Service struct {
	blockedRepo BlockedSlotRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(blockedRepo BlockedSlotRepository, logger Logger) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// CheckAvailability проверяет доступность слота (date, startTime)
// serviceIDs принимается для совместимости с клиентским контрактом:
// длительность выбранных услуг сейчас не влияет на вердикт
// Если слот занят, в ответ включаются альтернативные слоты на эту дату
func (s *Service) CheckAvailability(
	ctx context.Context,
	date time.Time,
	startTime types.TimeString,
	serviceIDs []string,
) (*domain.AvailabilityResult, error) {
	s.logger.Info("CheckAvailability: date=%s, time=%s, services=%d",
		date.Format(domain.DateFormat), startTime, len(serviceIDs))

	if date.IsZero() {
		s.logger.Warn("CheckAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := startTime.Validate(); err != nil {
		s.logger.Warn("CheckAvailability: invalid time: %v", err)
		return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	blocked, err := s.blockedRepo.IsBlocked(ctx, date, startTime)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to check slot: %v", err)
		return nil, fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
	}

	if !blocked {
		s.logger.Info("CheckAvailability: slot %s is available", domain.SlotKey(date, startTime))
		return &domain.AvailabilityResult{
			Available:        true,
			AlternativeSlots: []types.TimeString{},
		}, nil
	}

	alternatives, err := s.GetAlternativeSlots(ctx, date, domain.DefaultAlternativeSlotLimit)
	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckAvailability: slot %s is blocked, %d alternatives offered",
		domain.SlotKey(date, startTime), len(alternatives))

	return &domain.AvailabilityResult{
		Available:        false,
		AlternativeSlots: alternatives,
	}, nil
}

// GetAlternativeSlots возвращает свободные слоты на дату в порядке перечисления
// При limit <= 0 используется значение по умолчанию
// Может вернуть меньше limit слотов, если день исчерпан
func (s *Service) GetAlternativeSlots(ctx context.Context, date time.Time, limit int) ([]types.TimeString, error) {
	if date.IsZero() {
		s.logger.Warn("GetAlternativeSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if limit <= 0 {
		limit = domain.DefaultAlternativeSlotLimit
	}
	if limit > domain.MaxSlotsPerDay {
		limit = domain.MaxSlotsPerDay
	}

	blockedSlots, err := s.blockedRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetAlternativeSlots: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	slots := enumerateFreeSlots(toBlockedSet(blockedSlots), limit)

	s.logger.Info("GetAlternativeSlots: date=%s, limit=%d, found=%d",
		date.Format(domain.DateFormat), limit, len(slots))

	return slots, nil
}

// LoadMoreSlots возвращает следующие additionalCount свободных слотов на дату,
// отсутствующих в currentSlots, в порядке перечисления
// При additionalCount <= 0 используется значение по умолчанию
func (s *Service) LoadMoreSlots(
	ctx context.Context,
	date time.Time,
	currentSlots []types.TimeString,
	additionalCount int,
) ([]types.TimeString, error) {
	if date.IsZero() {
		s.logger.Warn("LoadMoreSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if additionalCount <= 0 {
		additionalCount = domain.DefaultAdditionalSlotCount
	}

	allSlots, err := s.GetAlternativeSlots(ctx, date, domain.MaxSlotsPerDay)
	if err != nil {
		return nil, err
	}

	newSlots := filterNewSlots(allSlots, currentSlots, additionalCount)

	s.logger.Info("LoadMoreSlots: date=%s, current=%d, loaded=%d",
		date.Format(domain.DateFormat), len(currentSlots), len(newSlots))

	return newSlots, nil
}
