package toggle_phlebotomist

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/service/phlebotomists"
)

const (
	msgNotFound     = "Phlebotomist not found"
	msgBusy         = "Action already in progress"
	msgToggleFailed = "Failed to update status"
)

type Handler struct {
	service PhlebotomistsService
	logger  Logger
}

func NewHandler(service PhlebotomistsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/phlebotomists/{id}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := domain.ID(mux.Vars(r)["id"])

	if err := h.service.EnsureLoaded(r.Context()); err != nil {
		h.logger.Warn("PATCH /phlebotomists/{id}/toggle - List is not loaded: %v", err)
	}

	record, message, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, phlebotomists.ErrNotFound):
			h.logger.Warn("PATCH /phlebotomists/{id}/toggle - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resource.ErrBusy):
			h.logger.Warn("PATCH /phlebotomists/{id}/toggle - Busy: id=%s", id)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("PATCH /phlebotomists/{id}/toggle - Failed: id=%s, error=%v", id, err)
			handlers.RespondFailure(w, err, msgToggleFailed)
		}
		return
	}

	h.logger.Info("PATCH /phlebotomists/{id}/toggle - Toggled: id=%s, active=%v", id, record.IsActive)
	handlers.RespondSuccess(w, message, record)
}
