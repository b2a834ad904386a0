package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
)

// SessionTokenHeader заголовок с токеном сессии мобильного приложения
const SessionTokenHeader = "X-Session-Token"

const msgMissingSession = "sessione non valida, effettua di nuovo l'accesso"

type contextKey string

const (
	userEmailContextKey    contextKey = "userEmail"
	sessionTokenContextKey contextKey = "sessionToken"
)

// SessionResolver разрешает токен сессии в email пользователя
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// NewAuth создает middleware аутентификации по токену сессии
// Email пользователя и токен кладутся в контекст запроса
func NewAuth(resolver SessionResolver, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionTokenHeader)
			if token == "" {
				logger.Warn("%s %s - Missing session token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingSession)
				return
			}

			email, err := resolver.ResolveSession(r.Context(), token)
			if err != nil {
				logger.Warn("%s %s - Invalid session token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgMissingSession)
				return
			}

			ctx := context.WithValue(r.Context(), userEmailContextKey, email)
			ctx = context.WithValue(ctx, sessionTokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserEmail возвращает email аутентифицированного пользователя из контекста
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailContextKey).(string)
	return email, ok
}

// GetSessionToken возвращает токен сессии из контекста
func GetSessionToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenContextKey).(string)
	return token, ok
}
