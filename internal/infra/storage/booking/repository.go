package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/pkg/dbmetrics"
	"github.com/tomspera05/NH-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с журналом бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// storedService модель услуги для хранения в jsonb колонке
// Список услуг денормализуется в бронирование целиком: каталог статичен,
// а история должна сохранять состав заказа на момент записи
type storedService struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Subtitle        *string `json:"subtitle,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
}

// Create добавляет бронирование в журнал
// Если в контексте передана активная транзакция (через context.Value), использует её
// ID и состав услуг задаются вызывающим кодом, created_at проставляет БД
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	servicesJSON, err := encodeServices(booking.Services)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_email",
			"booking_date",
			"start_time",
			"services",
		).
		Values(
			booking.ID,
			booking.UserEmail,
			booking.Date,
			booking.StartTime,
			servicesJSON,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_email",
		"booking_date",
		"start_time",
		"services",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByUserEmail получает бронирования пользователя в порядке добавления в журнал
func (r *Repository) GetByUserEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_email",
		"booking_date",
		"start_time",
		"services",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"user_email": email}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserEmail - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var servicesJSON []byte
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserEmail,
		&booking.Date,
		&booking.StartTime,
		&servicesJSON,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan row: %v", ErrScanRow, err)
	}

	services, err := decodeServices(servicesJSON)
	if err != nil {
		return nil, err
	}

	booking.Services = services
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// encodeServices сериализует список услуг для jsonb колонки
func encodeServices(services []domain.Service) ([]byte, error) {
	stored := make([]storedService, len(services))
	for i, s := range services {
		stored[i] = storedService{
			ID:              s.ID,
			Name:            s.Name,
			Subtitle:        s.Subtitle,
			DurationMinutes: s.DurationMinutes,
		}
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeServices, err)
	}
	return data, nil
}

// decodeServices десериализует список услуг из jsonb колонки
func decodeServices(data []byte) ([]domain.Service, error) {
	var stored []storedService
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeServices, err)
	}

	services := make([]domain.Service, len(stored))
	for i, s := range stored {
		services[i] = domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			Subtitle:        s.Subtitle,
			DurationMinutes: s.DurationMinutes,
		}
	}
	return services, nil
}
