package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tomspera05/NH-BookingService/pkg/dbmetrics"
	"github.com/tomspera05/NH-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий сессий
// Сессия связывает выданный приложению токен с email пользователя
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, token string, userEmail string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns("token", "user_email").
		Values(token, userEmail).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetUserEmail возвращает email пользователя по токену сессии
func (r *Repository) GetUserEmail(ctx context.Context, token string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_email").
		From("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: GetUserEmail - build select query: %v", ErrBuildQuery, err)
	}

	var userEmail string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&userEmail)
	if err == sql.ErrNoRows {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetUserEmail - scan session: %v", ErrScanRow, err)
	}

	return userEmail, nil
}

// Delete удаляет сессию по токену
// Возвращает ErrSessionNotFound, если сессии не было
func (r *Repository) Delete(ctx context.Context, token string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
