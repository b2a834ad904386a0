package register

import (
	"errors"
	"net/http"

	"github.com/tomspera05/NH-BookingService/internal/api/handlers"
	"github.com/tomspera05/NH-BookingService/internal/service/accounts"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidInput       = "compila tutti i campi richiesti"
	msgEmailRegistered    = "email già registrata"
)

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

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrEmailAlreadyRegistered):
			h.logger.Warn("POST /auth/register - Email already registered: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailRegistered)

		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered successfully: email=%s", result.User.Email)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
