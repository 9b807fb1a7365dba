package logout

import (
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
)

const msgLoggedOut = "Signed out"

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

// Handle DELETE /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.logger.Error("DELETE /session - Failed to remove token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /session - Token removed")
	handlers.RespondSuccess(w, msgLoggedOut, nil)
}
