package logout

import (
	"net/http"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
	"github.com/tomspera05/NH-BookingService/internal/api/middleware"
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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetSessionToken(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/logout - Session token missing in context")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Session closed")
	w.WriteHeader(http.StatusNoContent)
}
