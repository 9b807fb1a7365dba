package create_resource

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgUnknownResource    = "Unknown resource"
	msgNotReady           = "List is not loaded yet. Please refresh and try again."
	msgCreateFailed       = "Failed to create record"
	msgCreated            = "Created successfully"
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

// Handle POST /api/v1/resources/{resource}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["resource"]

	var values map[string]interface{}
	if err := handlers.DecodeJSON(r, &values); err != nil {
		h.logger.Warn("POST /resources/{resource} - Invalid request body: resource=%s, error=%v", name, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.useCase.Create(r.Context(), name, values)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrUnknownResource):
			h.logger.Warn("POST /resources/{resource} - Unknown resource: %s", name)
			handlers.RespondNotFound(w, msgUnknownResource)

		case errors.Is(err, form.ErrValidation):
			h.logger.Warn("POST /resources/{resource} - Validation failed: resource=%s, error=%v", name, err)
			handlers.RespondFailure(w, err, "")

		case errors.Is(err, resource.ErrNotReady):
			h.logger.Warn("POST /resources/{resource} - List not ready: resource=%s", name)
			handlers.RespondConflict(w, msgNotReady)

		default:
			h.logger.Error("POST /resources/{resource} - Failed to create: resource=%s, error=%v", name, err)
			handlers.RespondFailure(w, err, msgCreateFailed)
		}
		return
	}

	message := created.Message
	if message == "" {
		message = msgCreated
	}

	h.logger.Info("POST /resources/{resource} - Created: resource=%s", name)
	handlers.RespondSuccess(w, message, created.Record)
}
