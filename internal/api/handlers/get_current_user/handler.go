package get_current_user

import (
	"errors"
	"net/http"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
	"github.com/tomspera05/NH-BookingService/internal/api/middleware"
	"github.com/tomspera05/NH-BookingService/internal/service/accounts"
)

const msgMissingSession = "sessione non valida o scaduta"

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetSessionToken(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/me - Session token missing in context")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	user, err := h.service.GetCurrentUser(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrNoActiveSession):
			h.logger.Warn("GET /auth/me - No active session for token")
			handlers.RespondUnauthorized(w, msgMissingSession)

		default:
			h.logger.Error("GET /auth/me - Failed to get current user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
