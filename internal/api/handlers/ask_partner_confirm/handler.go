package ask_partner_confirm

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
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidAction      = "Action must be approve or reject"
	msgNotFound           = "Partner request not found"
	msgBusy               = "Action already in progress"
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

// Handle POST /api/v1/partners/{id}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := domain.ID(mux.Vars(r)["id"])

	var req ConfirmRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /partners/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.EnsureLoaded(r.Context()); err != nil {
		h.logger.Warn("POST /partners/{id}/confirm - List is not loaded: %v", err)
	}

	prompt, err := h.service.AskConfirm(id, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, partners.ErrInvalidAction):
			h.logger.Warn("POST /partners/{id}/confirm - Invalid action: id=%s, action=%q", id, req.Action)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, partners.ErrRequestNotFound):
			h.logger.Warn("POST /partners/{id}/confirm - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resource.ErrBusy):
			h.logger.Warn("POST /partners/{id}/confirm - Busy: id=%s", id)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("POST /partners/{id}/confirm - Failed: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}
