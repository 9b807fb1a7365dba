package get_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
)

const msgUnknownResource = "Unknown resource"

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

// Handle GET /api/v1/resources/{resource}/form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["resource"]

	fv, err := h.useCase.Form(r.Context(), name)
	if err != nil {
		if errors.Is(err, resources.ErrUnknownResource) {
			h.logger.Warn("GET /resources/{resource}/form - Unknown resource: %s", name)
			handlers.RespondNotFound(w, msgUnknownResource)
			return
		}
		h.logger.Error("GET /resources/{resource}/form - Failed: resource=%s, error=%v", name, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fv)
}
