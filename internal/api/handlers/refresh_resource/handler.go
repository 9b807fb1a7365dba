package refresh_resource

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
)

const (
	msgUnknownResource = "Unknown resource"
	msgRefreshed       = "List refreshed"
	msgRefreshFailed   = "Failed to load data"
)

type Handler struct {
	useCase ResourcesUseCase
	logger  Logger
}

func NewHandler(useCase ResourcesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources/{resource}/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["resource"]
	q := r.URL.Query()
	params := resources.Params{
		Query:  q.Get("q"),
		Status: q.Get("status"),
		LabID:  q.Get("labId"),
	}

	view, err := h.useCase.Refresh(r.Context(), name, params)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrUnknownResource):
			h.logger.Warn("POST /resources/{resource}/refresh - Unknown resource: %s", name)
			handlers.RespondNotFound(w, msgUnknownResource)

		case view != nil:
			h.logger.Warn("POST /resources/{resource}/refresh - Reload failed: resource=%s, error=%v", name, err)
			handlers.RespondFailureData(w, err, msgRefreshFailed, view)

		default:
			h.logger.Error("POST /resources/{resource}/refresh - Failed: resource=%s, error=%v", name, err)
			handlers.RespondFailure(w, err, msgRefreshFailed)
		}
		return
	}

	h.logger.Info("POST /resources/{resource}/refresh - Reloaded: resource=%s", name)
	handlers.RespondSuccess(w, msgRefreshed, view)
}
