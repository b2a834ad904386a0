package accounts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	sessionRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/session"
	userRepo "github.com/tomspera05/NH-BookingService/internal/infra/storage/user"
	"github.com/tomspera05/NH-BookingService/internal/service/accounts/models"
)

// fakeUserRepo in-memory реализация UserRepository для тестов
type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return nil, userRepo.ErrUserAlreadyExists
	}

	stored := *user
	stored.CreatedAt = time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	r.users[user.Email] = &stored

	result := stored
	return &result, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	result := *user
	return &result, nil
}

// fakeSessionRepo in-memory реализация SessionRepository для тестов
type fakeSessionRepo struct {
	sessions map[string]string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]string)}
}

func (r *fakeSessionRepo) Create(_ context.Context, token string, userEmail string) error {
	r.sessions[token] = userEmail
	return nil
}

func (r *fakeSessionRepo) GetUserEmail(_ context.Context, token string) (string, error) {
	email, ok := r.sessions[token]
	if !ok {
		return "", sessionRepo.ErrSessionNotFound
	}
	return email, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, token string) error {
	if _, ok := r.sessions[token]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	delete(r.sessions, token)
	return nil
}

// fakeTokenGenerator выдает предсказуемые токены
type fakeTokenGenerator struct {
	counter int
}

func (g *fakeTokenGenerator) NewToken() string {
	g.counter++
	return fmt.Sprintf("token-%d", g.counter)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	svc := NewService(users, sessions, &fakeTokenGenerator{}, nopLogger{})
	return svc, users, sessions
}

func validRegisterRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName: "Mario",
		LastName:  "Rossi",
		Email:     "mario.rossi@example.com",
		Password:  "segreto",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, users, sessions := newTestService()

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Mario", resp.User.FirstName)
	assert.Equal(t, "Rossi", resp.User.LastName)
	assert.Equal(t, "mario.rossi@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.CreatedAt)

	// Сессия открыта сразу после регистрации
	email, err := sessions.GetUserEmail(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "mario.rossi@example.com", email)

	assert.Len(t, users.users, 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	// В справочнике остается ровно одна запись для email
	assert.Len(t, users.users, 1)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(req *models.RegisterRequest)
	}{
		{name: "empty first name", mutate: func(r *models.RegisterRequest) { r.FirstName = " " }},
		{name: "empty last name", mutate: func(r *models.RegisterRequest) { r.LastName = "" }},
		{name: "empty email", mutate: func(r *models.RegisterRequest) { r.Email = "" }},
		{name: "malformed email", mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{name: "empty password", mutate: func(r *models.RegisterRequest) { r.Password = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin_AfterRegister(t *testing.T) {
	svc, _, _ := newTestService()

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	loggedIn, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "mario.rossi@example.com",
		Password: "segreto",
	})
	require.NoError(t, err)

	// Пользователь тот же, токен сессии новый
	assert.Equal(t, registered.User, loggedIn.User)
	assert.NotEqual(t, registered.Token, loggedIn.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "mario.rossi@example.com",
		Password: "sbagliata",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nessuno@example.com",
		Password: "segreto",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyInput(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &models.LoginRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCurrentUser(t *testing.T) {
	svc, _, _ := newTestService()

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	user, err := svc.GetCurrentUser(context.Background(), registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User, *user)

	_, err = svc.GetCurrentUser(context.Background(), "unknown-token")
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = svc.GetCurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestResolveSession(t *testing.T) {
	svc, _, _ := newTestService()

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	email, err := svc.ResolveSession(context.Background(), registered.Token)
	require.NoError(t, err)
	assert.Equal(t, "mario.rossi@example.com", email)

	_, err = svc.ResolveSession(context.Background(), "unknown-token")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestLogout_Idempotent(t *testing.T) {
	svc, _, _ := newTestService()

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), registered.Token))

	// Сессия закрыта
	_, err = svc.GetCurrentUser(context.Background(), registered.Token)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	// Повторный logout того же токена не является ошибкой
	assert.NoError(t, svc.Logout(context.Background(), registered.Token))
	assert.NoError(t, svc.Logout(context.Background(), ""))
}
