package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/service/dashboard"
	"github.com/m04kA/SMC-AdminConsole/internal/toast"
)

const (
	msgInvalidRange = "Invalid date range"
	msgUnavailable  = "Failed to load dashboard"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rng, err := h.service.ParseRange(q.Get("from"), q.Get("to"))
	if err != nil {
		h.logger.Warn("GET /dashboard - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	snap, err := h.service.Snapshot(r.Context(), rng)
	if err != nil {
		if errors.Is(err, dashboard.ErrUnavailable) {
			h.logger.Warn("GET /dashboard - Metrics unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, toast.Message(err, msgUnavailable))
			return
		}
		h.logger.Error("GET /dashboard - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, snap)
}
