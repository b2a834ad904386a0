package get_user_bookings

import (
	"net/http"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
	"github.com/tomspera05/NH-BookingService/internal/api/middleware"
)

const msgMissingSession = "sessione non valida o scaduta"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userEmail, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - User email missing in context")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), userEmail)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get bookings: user=%s, error=%v", userEmail, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings for user=%s", len(result.Bookings), userEmail)
	handlers.RespondJSON(w, http.StatusOK, result)
}
