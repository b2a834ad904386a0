package get_alternative_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/internal/service/availability"
)

const (
	msgInvalidDate  = "data non valida"
	msgInvalidLimit = "parametro limit non valido"
	msgInvalidInput = "parametri della richiesta non validi"
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

// Handle GET /api/v1/availability/slots?date=YYYY-MM-DD&limit=6
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	limit := 0
	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil {
			h.logger.Warn("GET /availability/slots - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	slots, err := h.service.GetAlternativeSlots(r.Context(), date, limit)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability/slots - Failed to get slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromTimeStrings(slots))
}
