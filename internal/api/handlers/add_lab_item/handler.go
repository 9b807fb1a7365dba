package add_lab_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/service/labs"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgLabNotFound        = "Lab not found"
	msgPackageFailed      = "Failed to add package"
	msgTestFailed         = "Failed to add test"
	msgPackageAdded       = "Package added"
	msgTestAdded          = "Test added"
)

type Handler struct {
	service LabsService
	logger  Logger
}

func NewHandler(service LabsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandlePackage POST /api/v1/labs/{labId}/packages
func (h *Handler) HandlePackage(w http.ResponseWriter, r *http.Request) {
	labID, values, ok := h.decode(w, r, "packages")
	if !ok {
		return
	}

	res, err := h.service.AddPackage(r.Context(), labID, values)
	if err != nil {
		h.fail(w, "packages", labID, err, msgPackageFailed)
		return
	}

	h.logger.Info("POST /labs/{id}/packages - Package added: lab_id=%s, package_id=%s", labID, res.Record.ID)
	handlers.RespondSuccess(w, messageOr(res.Message, msgPackageAdded), res.Record)
}

// HandleTest POST /api/v1/labs/{labId}/tests
func (h *Handler) HandleTest(w http.ResponseWriter, r *http.Request) {
	labID, values, ok := h.decode(w, r, "tests")
	if !ok {
		return
	}

	res, err := h.service.AddTest(r.Context(), labID, values)
	if err != nil {
		h.fail(w, "tests", labID, err, msgTestFailed)
		return
	}

	h.logger.Info("POST /labs/{id}/tests - Test added: lab_id=%s, test_id=%s", labID, res.Record.ID)
	handlers.RespondSuccess(w, messageOr(res.Message, msgTestAdded), res.Record)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, kind string) (domain.ID, map[string]interface{}, bool) {
	labID := domain.ID(mux.Vars(r)["labId"])

	var values map[string]interface{}
	if err := handlers.DecodeJSON(r, &values); err != nil {
		h.logger.Warn("POST /labs/{id}/%s - Invalid request body: %v", kind, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return "", nil, false
	}

	if err := h.service.EnsureLoaded(r.Context()); err != nil {
		h.logger.Warn("POST /labs/{id}/%s - Labs are not loaded: %v", kind, err)
	}
	return labID, values, true
}

func (h *Handler) fail(w http.ResponseWriter, kind string, labID domain.ID, err error, fallback string) {
	switch {
	case errors.Is(err, form.ErrValidation):
		h.logger.Warn("POST /labs/{id}/%s - Validation failed: lab_id=%s, error=%v", kind, labID, err)
		handlers.RespondFailure(w, err, "")

	case errors.Is(err, labs.ErrLabNotFound):
		h.logger.Warn("POST /labs/{id}/%s - Lab not found: lab_id=%s", kind, labID)
		handlers.RespondNotFound(w, msgLabNotFound)

	default:
		h.logger.Error("POST /labs/{id}/%s - Failed: lab_id=%s, error=%v", kind, labID, err)
		handlers.RespondFailure(w, err, fallback)
	}
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
