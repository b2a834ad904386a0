package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	bookingRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/booking"
)

// fakeBookingRepo in-memory реализация BookingRepository для тестов
type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByUserEmail(_ context.Context, email string) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserEmail == email {
			result = append(result, b)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id, email string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserEmail: email,
		Date:      time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		Services: []domain.Service{
			{ID: "1", Name: "TAGLIO UOMO", DurationMinutes: 30},
		},
		CreatedAt: time.Date(2025, 11, 10, 15, 30, 0, 0, time.UTC),
	}
}

func TestGetByID_Success(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		testBooking("b-1", "mario.rossi@example.com"),
	}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetByID(context.Background(), "b-1", "mario.rossi@example.com")
	require.NoError(t, err)

	assert.Equal(t, "b-1", result.ID)
	assert.Equal(t, "mario.rossi@example.com", result.UserEmail)
	assert.Equal(t, "2025-11-20", result.Date)
	assert.Equal(t, "09:00", result.Time)
	require.Len(t, result.Services, 1)
	assert.Equal(t, "TAGLIO UOMO", result.Services[0].Name)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing", "mario.rossi@example.com")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_ForeignBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		testBooking("b-1", "mario.rossi@example.com"),
	}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), "b-1", "altro@example.com")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		testBooking("b-1", "mario.rossi@example.com"),
		testBooking("b-2", "altro@example.com"),
		testBooking("b-3", "mario.rossi@example.com"),
	}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), "mario.rossi@example.com")
	require.NoError(t, err)

	// Порядок журнала сохраняется
	require.Len(t, result.Bookings, 2)
	assert.Equal(t, "b-1", result.Bookings[0].ID)
	assert.Equal(t, "b-3", result.Bookings[1].ID)
}

func TestGetUserBookings_Empty(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), "nessuno@example.com")
	require.NoError(t, err)
	assert.Empty(t, result.Bookings)
}
