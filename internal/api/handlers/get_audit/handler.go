package get_audit

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

const (
	msgInvalidLimit = "Invalid limit"

	maxLimit = 500
)

type Handler struct {
	reader       AuditReader
	defaultLimit int
	logger       Logger
}

func NewHandler(reader AuditReader, defaultLimit int, logger Logger) *Handler {
	return &Handler{
		reader:       reader,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// AuditResponse HTTP response model
type AuditResponse struct {
	Entries []domain.AuditEntry `json:"entries"`
}

// Handle GET /api/v1/audit?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			h.logger.Warn("GET /audit - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = n
	}

	entries, err := h.reader.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /audit - Failed to read audit log: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}

	handlers.RespondJSON(w, http.StatusOK, AuditResponse{Entries: entries})
}
