package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	sessionRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/session"
	userRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/user"
	"github.com/tomspera05/NH-BookingService/internal/service/accounts/models"
)

// Service сервис учетных записей и сессий
// Email является уникальным ключом пользователя
// Пароли хранятся и сравниваются как непрозрачные строки
type Service struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	tokens      TokenGenerator
	logger      Logger
}

// NewService создает новый экземпляр сервиса учетных записей
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokens TokenGenerator,
	logger Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register регистрирует нового пользователя и открывает для него сессию
// Возвращает ErrEmailAlreadyRegistered, если email уже занят
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: email=%s", req.Email)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	// Проверяем, что email свободен
	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		s.logger.Warn("Register: email %s already registered", req.Email)
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	user := &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// Гонка двух регистраций на один email разрешается ограничением БД
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			s.logger.Warn("Register: email %s already registered (concurrent insert)", req.Email)
			return nil, ErrEmailAlreadyRegistered
		}
		s.logger.Error("Register: failed to create user email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - failed to create user: %v", ErrInternal, err)
	}

	token, err := s.openSession(ctx, created.Email)
	if err != nil {
		s.logger.Error("Register: failed to open session for email=%s: %v", created.Email, err)
		return nil, err
	}

	s.logger.Info("Register: user %s registered successfully", created.Email)

	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(created),
	}, nil
}

// Login проверяет учетные данные и открывает сессию
// Сравнение пароля - точное строковое равенство
// Возвращает ErrInvalidCredentials при любом несовпадении
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: email=%s", req.Email)

	if req.Email == "" || req.Password == "" {
		s.logger.Warn("Login: empty email or password")
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if user.Password != req.Password {
		s.logger.Warn("Login: wrong password for email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.Email)
	if err != nil {
		s.logger.Error("Login: failed to open session for email=%s: %v", user.Email, err)
		return nil, err
	}

	s.logger.Info("Login: user %s logged in successfully", user.Email)

	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// GetCurrentUser возвращает пользователя активной сессии по токену
func (s *Service) GetCurrentUser(ctx context.Context, token string) (*models.UserResponse, error) {
	if token == "" {
		return nil, ErrNoActiveSession
	}

	email, err := s.sessionRepo.GetUserEmail(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrNoActiveSession
		}
		s.logger.Error("GetCurrentUser: session repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCurrentUser - session repository error: %v", ErrInternal, err)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			// Сессия ссылается на несуществующего пользователя
			s.logger.Warn("GetCurrentUser: session user %s not found", email)
			return nil, ErrNoActiveSession
		}
		s.logger.Error("GetCurrentUser: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetCurrentUser - repository error: %v", ErrInternal, err)
	}

	response := models.FromDomainUser(user)
	return &response, nil
}

// ResolveSession возвращает email пользователя активной сессии
// Используется middleware аутентификации
func (s *Service) ResolveSession(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNoActiveSession
	}

	email, err := s.sessionRepo.GetUserEmail(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return "", ErrNoActiveSession
		}
		s.logger.Error("ResolveSession: session repository error: %v", err)
		return "", fmt.Errorf("%w: ResolveSession - session repository error: %v", ErrInternal, err)
	}

	return email, nil
}

// Logout закрывает сессию по токену
// Повторный logout того же токена не является ошибкой
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := s.sessionRepo.Delete(ctx, token)
	if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		s.logger.Error("Logout: session repository error: %v", err)
		return fmt.Errorf("%w: Logout - session repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session closed")
	return nil
}

// openSession создает новую сессию и возвращает её токен
func (s *Service) openSession(ctx context.Context, email string) (string, error) {
	token := s.tokens.NewToken()
	if err := s.sessionRepo.Create(ctx, token, email); err != nil {
		return "", fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
	}
	return token, nil
}

// validateRegisterRequest валидирует данные регистрации
func validateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is malformed", ErrInvalidInput)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}
