package upload_pricing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/service/pricing"
)

const (
	msgInvalidForm  = "Invalid upload form"
	msgFileTooLarge = "File is too large (max 10 MB)"
	msgUploadFailed = "Failed to upload pricing"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing/{type}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, pricing.MaxFileSize+formOverhead)

	req, err := parseRequest(r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.Is(err, errFileTooLarge) || errors.As(err, &maxErr) {
			h.logger.Warn("POST /pricing/{type} - File too large: type=%s", req.Type)
			handlers.RespondFailure(w, &form.ValidationError{
				Form:   "pricing",
				Fields: form.Errors{fieldFile: msgFileTooLarge},
			}, "")
			return
		}
		h.logger.Warn("POST /pricing/{type} - Invalid form: type=%s, error=%v", req.Type, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	res, err := h.service.Upload(r.Context(), req)
	if err != nil {
		if errors.Is(err, form.ErrValidation) {
			h.logger.Warn("POST /pricing/{type} - Validation failed: type=%s, error=%v", req.Type, err)
			handlers.RespondFailure(w, err, "")
			return
		}
		h.logger.Error("POST /pricing/{type} - Upload failed: type=%s, lab=%s, error=%v", req.Type, req.LabID, err)
		handlers.RespondFailure(w, err, msgUploadFailed)
		return
	}

	h.logger.Info("POST /pricing/{type} - Uploaded: type=%s, lab=%s, rows=%d", req.Type, req.LabID, res.FinalCount)
	handlers.RespondSuccess(w, res.Message, res)
}
