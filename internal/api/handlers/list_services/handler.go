package list_services

import (
	"net/http"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.All()

	h.logger.Info("GET /services - Returned %d services", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
