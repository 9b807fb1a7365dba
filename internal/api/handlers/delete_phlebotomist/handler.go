package delete_phlebotomist

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
	msgDeleteFailed = "Failed to delete phlebotomist"
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

// DeleteResponse данные ответа
type DeleteResponse struct {
	ID domain.ID `json:"id"`
}

// Handle DELETE /api/v1/phlebotomists/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := domain.ID(mux.Vars(r)["id"])

	if err := h.service.EnsureLoaded(r.Context()); err != nil {
		h.logger.Warn("DELETE /phlebotomists/{id} - List is not loaded: %v", err)
	}

	message, err := h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, phlebotomists.ErrNotFound):
			h.logger.Warn("DELETE /phlebotomists/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resource.ErrBusy):
			h.logger.Warn("DELETE /phlebotomists/{id} - Busy: id=%s", id)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("DELETE /phlebotomists/{id} - Failed: id=%s, error=%v", id, err)
			handlers.RespondFailure(w, err, msgDeleteFailed)
		}
		return
	}

	h.logger.Info("DELETE /phlebotomists/{id} - Deleted: id=%s", id)
	handlers.RespondSuccess(w, message, DeleteResponse{ID: id})
}
