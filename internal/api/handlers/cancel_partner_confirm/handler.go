package cancel_partner_confirm

import (
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
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

// Handle DELETE /api/v1/partners/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.CancelConfirm()
	h.logger.Info("DELETE /partners/confirm - Confirmation dismissed")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
