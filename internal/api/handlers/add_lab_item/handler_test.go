package add_lab_item

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/service/labs"
	"github.com/m04kA/SMC-AdminConsole/internal/service/onboarding"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
)

type fakeService struct {
	labID domain.ID
	err   error
}

func (f *fakeService) EnsureLoaded(context.Context) error { return nil }

func (f *fakeService) AddPackage(_ context.Context, labID domain.ID, values map[string]interface{}) (*onboarding.Result[domain.Package], error) {
	f.labID = labID
	if f.err != nil {
		return nil, f.err
	}
	return &onboarding.Result[domain.Package]{Record: domain.Package{ID: "p1", Name: values["name"].(string)}}, nil
}

func (f *fakeService) AddTest(_ context.Context, labID domain.ID, values map[string]interface{}) (*onboarding.Result[domain.Test], error) {
	f.labID = labID
	if f.err != nil {
		return nil, f.err
	}
	return &onboarding.Result[domain.Test]{Record: domain.Test{ID: "t1", Name: values["name"].(string)}, Message: "Test added to lab"}, nil
}

func request(kind, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/labs/3/"+kind, strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"labId": "3"})
}

func TestHandlePackage(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).HandlePackage(rec, request("packages", `{"name":"Full Body"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ID("3"), svc.labID)
	assert.Contains(t, rec.Body.String(), msgPackageAdded)
}

func TestHandleTest_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &form.ValidationError{Form: "test", Fields: form.Errors{"mrp": "MRP is required"}}, http.StatusUnprocessableEntity},
		{"lab not found", labs.ErrLabNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, logger.NewNop()).HandleTest(rec, request("tests", `{"name":"CBC"}`))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
