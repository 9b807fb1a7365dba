package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
	"github.com/m04kA/SMC-AdminConsole/pkg/requestid"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeMetrics struct {
	seen []observation
}

func (f *fakeMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.seen = append(f.seen, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/phlebotomists/{id}/toggle", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/phlebotomists/42/toggle", nil))

	require.Len(t, m.seen, 1)
	assert.Equal(t, observation{method: http.MethodPatch, route: "/phlebotomists/{id}/toggle", status: http.StatusConflict}, m.seen[0])
}

func TestRequestID(t *testing.T) {
	var got string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = requestid.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestid.Header, "abc-123")
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", got)
	assert.Equal(t, "abc-123", rec.Header().Get(requestid.Header))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "abc-123", got)
	assert.Equal(t, got, rec.Header().Get(requestid.Header))
}

func TestRecover(t *testing.T) {
	h := Recover(logger.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type fakeTokens struct {
	token string
	err   error
}

func (f fakeTokens) Token(context.Context) (string, error) { return f.token, f.err }

func sessionRouter(tokens TokenSource) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(RequireSession(tokens, logger.NewNop(), "login"))
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
	api.HandleFunc("/session", ok).Methods(http.MethodPost).Name("login")
	api.HandleFunc("/session", ok).Methods(http.MethodDelete)
	api.HandleFunc("/partners/{id}/approve", ok).Methods(http.MethodPost)
	return r
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name   string
		tokens fakeTokens
		method string
		path   string
		auth   string
		want   int
	}{
		{name: "missing header", tokens: fakeTokens{token: "secret"}, method: http.MethodPost, path: "/api/v1/partners/7/approve", want: http.StatusUnauthorized},
		{name: "wrong token", tokens: fakeTokens{token: "secret"}, method: http.MethodPost, path: "/api/v1/partners/7/approve", auth: "Bearer other", want: http.StatusUnauthorized},
		{name: "no scheme", tokens: fakeTokens{token: "secret"}, method: http.MethodDelete, path: "/api/v1/session", auth: "secret", want: http.StatusUnauthorized},
		{name: "nothing stored", tokens: fakeTokens{}, method: http.MethodDelete, path: "/api/v1/session", auth: "Bearer ", want: http.StatusUnauthorized},
		{name: "matching token", tokens: fakeTokens{token: "secret"}, method: http.MethodPost, path: "/api/v1/partners/7/approve", auth: "Bearer secret", want: http.StatusOK},
		{name: "scheme case-insensitive", tokens: fakeTokens{token: "secret"}, method: http.MethodDelete, path: "/api/v1/session", auth: "bearer secret", want: http.StatusOK},
		{name: "login is public", tokens: fakeTokens{}, method: http.MethodPost, path: "/api/v1/session", want: http.StatusOK},
		{name: "store failure", tokens: fakeTokens{err: errors.New("redis down")}, method: http.MethodDelete, path: "/api/v1/session", auth: "Bearer secret", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			sessionRouter(tt.tokens).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
