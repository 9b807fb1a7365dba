package get_audit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
)

type fakeReader struct {
	limit int
}

func (f *fakeReader) Recent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	f.limit = limit
	return nil, nil
}

func TestHandle_Limit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		want      int
		wantLimit int
	}{
		{"default", "", http.StatusOK, 50},
		{"explicit", "?limit=10", http.StatusOK, 10},
		{"too large", "?limit=1000", http.StatusBadRequest, 0},
		{"not a number", "?limit=ten", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &fakeReader{}
			rec := httptest.NewRecorder()

			NewHandler(reader, 50, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/audit"+tt.query, nil))

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.wantLimit, reader.limit)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"entries":[]}`, rec.Body.String())
			}
		})
	}
}
