package perform_partner_action

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/service/partners"
)

const (
	msgInvalidAction = "Action must be approve or reject"
	msgNotConfirmed  = "Please confirm the action first"
	msgBusy          = "Action already in progress"
	msgNotFound      = "Partner request not found"
	msgActionFailed  = "Failed to update partner request"
)

type Handler struct {
	service PartnersService
	logger  Logger
}

func NewHandler(service PartnersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/partners/{id}/{action}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := domain.ID(vars["id"])
	action := vars["action"]

	res, err := h.service.Perform(r.Context(), id, action)
	if err != nil {
		switch {
		case errors.Is(err, partners.ErrInvalidAction):
			h.logger.Warn("POST /partners/{id}/{action} - Invalid action: id=%s, action=%q", id, action)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, resource.ErrNoConfirmation):
			h.logger.Warn("POST /partners/{id}/{action} - Not confirmed: id=%s, action=%s", id, action)
			handlers.RespondConflict(w, msgNotConfirmed)

		case errors.Is(err, resource.ErrBusy):
			h.logger.Warn("POST /partners/{id}/{action} - Busy: id=%s", id)
			handlers.RespondConflict(w, msgBusy)

		case errors.Is(err, partners.ErrRequestNotFound):
			h.logger.Warn("POST /partners/{id}/{action} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /partners/{id}/{action} - Failed: id=%s, action=%s, error=%v", id, action, err)
			handlers.RespondFailure(w, err, msgActionFailed)
		}
		return
	}

	h.logger.Info("POST /partners/{id}/{action} - Done: id=%s, status=%s", id, res.Record.Status)
	handlers.RespondSuccess(w, res.Message, res.Record)
}
