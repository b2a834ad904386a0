package accounts

import "errors"

var (
	// ErrEmailAlreadyRegistered возвращается при регистрации на занятый email
	ErrEmailAlreadyRegistered = errors.New("accounts: email already registered")

	// ErrInvalidCredentials возвращается, когда email и пароль не совпадают
	// ни с одной учетной записью
	ErrInvalidCredentials = errors.New("accounts: invalid credentials")

	// ErrNoActiveSession возвращается, когда токен не соответствует активной сессии
	ErrNoActiveSession = errors.New("accounts: no active session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("accounts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("accounts: internal error")
)
