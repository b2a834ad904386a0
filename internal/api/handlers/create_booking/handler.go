package create_booking

import (
	"errors"
	"net/http"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
	"github.com/tomspera05/NH-BookingService/internal/api/middleware"
	createBooking "github.com/tomspera05/NH-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidDate        = "data non valida"
	msgInvalidInput       = "parametri della richiesta non validi"
	msgUnknownService     = "servizio non presente nel catalogo"
	msgMissingSession     = "sessione non valida o scaduta"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userEmail, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - User email missing in context")
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userEmail)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Unknown service: %v", err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", userEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, user=%s", result.ID, result.UserEmail)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
