package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomspera05/NH-BookingService/internal/catalog"
	"github.com/tomspera05/NH-BookingService/internal/domain"
)

// fakeBookingRepo in-memory реализация BookingRepository для тестов
type fakeBookingRepo struct {
	created   []*domain.Booking
	createErr error
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}

	stored := *booking
	stored.CreatedAt = time.Date(2025, 11, 10, 15, 30, 0, 0, time.UTC)
	r.created = append(r.created, &stored)
	return &stored, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// fakeIDGenerator выдает фиксированный идентификатор
type fakeIDGenerator struct {
	id string
}

func (g *fakeIDGenerator) NewID() string {
	return g.id
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo) (*UseCase, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	uc := NewUseCase(repo, catalog.New(), txMgr, &fakeIDGenerator{id: "b-1"}, nopLogger{})
	return uc, txMgr
}

func validRequest() *Request {
	return &Request{
		UserEmail:  "mario.rossi@example.com",
		Date:       time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		ServiceIDs: []string{"2", "1"},
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, txMgr := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "mario.rossi@example.com", resp.UserEmail)
	assert.Equal(t, time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), resp.Date)
	assert.EqualValues(t, "09:00", resp.StartTime)
	assert.False(t, resp.CreatedAt.IsZero())

	// Состав заказа сохраняет порядок выбора
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "SAGOMATURA BARBA + TAGLIO", resp.Services[0].Name)
	assert.Equal(t, "TAGLIO UOMO", resp.Services[1].Name)

	// Запись выполнена в транзакции
	assert.Equal(t, 1, txMgr.calls)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "b-1", repo.created[0].ID)
}

func TestExecute_UnknownService(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(repo)

	req := validRequest()
	req.ServiceIDs = []string{"1", "99"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, repo.created)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "empty user email",
			mutate:  func(r *Request) { r.UserEmail = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero date",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "empty start time",
			mutate:  func(r *Request) { r.StartTime = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start time",
			mutate:  func(r *Request) { r.StartTime = "9am" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no services",
			mutate:  func(r *Request) { r.ServiceIDs = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name: "too many services",
			mutate: func(r *Request) {
				r.ServiceIDs = make([]string, domain.MaxServicesPerBooking+1)
				for i := range r.ServiceIDs {
					r.ServiceIDs[i] = "1"
				}
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			uc, _ := newTestUseCase(repo)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.created)
		})
	}
}

func TestExecute_PersistenceError(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("connection refused")}
	uc, _ := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
