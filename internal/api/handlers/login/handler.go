package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/session"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgEmptyToken         = "Token is required"
	msgLoggedIn           = "Signed in"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Login(r.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyToken):
			h.logger.Warn("POST /session - Empty token")
			handlers.RespondBadRequest(w, msgEmptyToken)

		default:
			h.logger.Error("POST /session - Failed to save token: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /session - Token saved")
	handlers.RespondSuccess(w, msgLoggedIn, nil)
}
