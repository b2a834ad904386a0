package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
	"github.com/tomspera05/NH-BookingService/internal/api/middleware"
	"github.com/tomspera05/NH-BookingService/internal/service/bookings"
)

const (
	msgMissingSession  = "sessione non valida o scaduta"
	msgInvalidID       = "identificativo della prenotazione non valido"
	msgBookingNotFound = "prenotazione non trovata"
	msgAccessDenied    = "non hai accesso a questa prenotazione"
)

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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userEmail, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{bookingId} - User email missing in context")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /bookings/{bookingId} - Empty booking id")
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, userEmail)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{bookingId} - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{bookingId} - Access denied: id=%s, user=%s", bookingID, userEmail)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{bookingId} - Failed to get booking: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}
