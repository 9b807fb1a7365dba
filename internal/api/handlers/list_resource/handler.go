package list_resource

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
)

const (
	msgInvalidParams   = "Invalid list parameters"
	msgUnknownResource = "Unknown resource"
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

// Handle GET /api/v1/resources/{resource}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["resource"]

	params, err := ParseParams(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /resources/{resource} - Invalid params: resource=%s, error=%v", name, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	view, err := h.useCase.List(r.Context(), name, params)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrUnknownResource):
			h.logger.Warn("GET /resources/{resource} - Unknown resource: %s", name)
			handlers.RespondNotFound(w, msgUnknownResource)

		case errors.Is(err, resources.ErrInvalidParams):
			h.logger.Warn("GET /resources/{resource} - Invalid params: resource=%s, error=%v", name, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /resources/{resource} - Failed to build view: resource=%s, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
