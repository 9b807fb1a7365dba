package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AdminConsole/pkg/requestid"
)

// maxRequestIDLen входящий id длиннее заменяется новым
const maxRequestIDLen = 64

// RequestID прокидывает X-Request-ID в контекст и ответ
// Попадает в журнал аудита
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), id)))
	})
}
