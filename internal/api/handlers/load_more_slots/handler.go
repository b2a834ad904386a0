package load_more_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidDate        = "data non valida"
	msgInvalidInput       = "parametri della richiesta non validi"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/slots/more
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoadMoreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/slots/more - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /availability/slots/more - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.service.LoadMoreSlots(r.Context(), date, req.CurrentTimeStrings(), req.AdditionalCount)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /availability/slots/more - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/slots/more - Failed to load slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromTimeStrings(slots))
}
