package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomspera05/NH-BookingService/internal/catalog"
	"github.com/tomspera05/NH-BookingService/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	catalog     ServiceCatalog
	txManager   TransactionManager
	idGenerator IDGenerator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceCatalog ServiceCatalog,
	txManager TransactionManager,
	idGenerator IDGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     serviceCatalog,
		txManager:   txManager,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности слота - зона ответственности клиентского flow:
// запись добавляется в журнал без повторной сверки с таблицей занятых слотов
// Запись выполняется в сериализуемой транзакции, чтобы при появлении
// нескольких одновременных писателей сохранить атомарность добавления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, date=%s, time=%s, services=%d",
		req.UserEmail, req.Date.Format(domain.DateFormat), req.StartTime, len(req.ServiceIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем выбранные услуги через каталог (с сохранением порядка выбора)
	services, err := uc.catalog.GetByIDs(req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: unknown service in selection: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
		}
		uc.logger.Error("CreateBooking: failed to resolve services: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve services: %v", ErrInternal, err)
	}

	// 3. Формируем запись журнала
	booking := &domain.Booking{
		ID:        uc.idGenerator.NewID(),
		UserEmail: req.UserEmail,
		Date:      req.Date,
		StartTime: req.StartTime,
		Services:  services,
	}

	// 4. Добавляем запись в журнал в сериализуемой транзакции
	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s for user=%s",
		result.ID, result.UserEmail)

	// Конвертируем в response
	serviceResponses := make([]ServiceResponse, len(result.Services))
	for i, s := range result.Services {
		serviceResponses[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Subtitle:        s.Subtitle,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &Response{
		ID:        result.ID,
		UserEmail: result.UserEmail,
		Date:      result.Date,
		StartTime: result.StartTime,
		Services:  serviceResponses,
		CreatedAt: result.CreatedAt,
	}, nil
}
