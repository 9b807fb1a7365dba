package create_resource

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
)

type fakeUseCase struct {
	created *resources.Created
	err     error
	name    string
	values  map[string]interface{}
}

func (f *fakeUseCase) Create(_ context.Context, name string, values map[string]interface{}) (*resources.Created, error) {
	f.name = name
	f.values = values
	return f.created, f.err
}

func serve(t *testing.T, uc *fakeUseCase, resourceName, body string) (*httptest.ResponseRecorder, handlers.Result) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources/"+resourceName, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"resource": resourceName})
	rec := httptest.NewRecorder()

	NewHandler(uc, logger.NewNop()).Handle(rec, req)

	var res handlers.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return rec, res
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{created: &resources.Created{Record: domain.Lab{ID: "1", Name: "City Lab"}}}

	rec, res := serve(t, uc, "labs", `{"name":"City Lab"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.Success)
	assert.Equal(t, msgCreated, res.Message)
	assert.Equal(t, "labs", uc.name)
	assert.Equal(t, "City Lab", uc.values["name"])
}

func TestHandle_ValidationErrors(t *testing.T) {
	uc := &fakeUseCase{err: &form.ValidationError{Form: "lab", Fields: form.Errors{"name": "Name is required"}}}

	rec, res := serve(t, uc, "labs", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, res.Success)
	assert.Equal(t, "Name is required", res.Errors["name"])
}

func TestHandle_BackendMessageInToast(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("create: %w", &backend.CreateError{Op: "CreateLab", Message: "Lab already exists", Err: backend.ErrAPI})}

	_, res := serve(t, uc, "labs", `{"name":"City Lab"}`)

	assert.False(t, res.Success)
	require.NotNil(t, res.Toast)
	assert.Equal(t, "Lab already exists", res.Toast.Message)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		body string
		want int
	}{
		{"unknown resource", resources.ErrUnknownResource, `{}`, http.StatusNotFound},
		{"not ready", resource.ErrNotReady, `{}`, http.StatusConflict},
		{"bad body", nil, `not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, res := serve(t, &fakeUseCase{err: tt.err}, "labs", tt.body)
			assert.Equal(t, tt.want, rec.Code)
			assert.False(t, res.Success)
		})
	}
}
