package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/booking"
	"github.com/tomspera05/NH-BookingService/internal/service/bookings/models"
)

// Service сервис чтения журнала бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id string, userEmail string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userEmail)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.BelongsTo(userEmail) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userEmail, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя в порядке добавления в журнал
func (s *Service) GetUserBookings(ctx context.Context, userEmail string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userEmail)

	bookings, err := s.bookingRepo.GetByUserEmail(ctx, userEmail)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userEmail, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), userEmail)
	return models.FromDomainBookingList(bookings), nil
}
