package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
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

// SessionResponse HTTP response model
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Handle GET /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ok, err := h.service.Authenticated(r.Context())
	if err != nil {
		h.logger.Error("GET /session - Failed to read token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SessionResponse{Authenticated: ok})
}
