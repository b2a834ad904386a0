package check_availability

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/internal/service/availability"
	"github.com/tomspera05/NH-BookingService/pkg/types"
)

const (
	msgInvalidDate  = "data non valida"
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

// Handle GET /api/v1/availability?date=YYYY-MM-DD&time=HH:MM&serviceIds=1,2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime := types.TimeString(query.Get("time"))
	serviceIDs := parseServiceIDs(query.Get("serviceIds"))

	result, err := h.service.CheckAvailability(r.Context(), date, startTime, serviceIDs)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to check availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainResult(result))
}

func parseServiceIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
