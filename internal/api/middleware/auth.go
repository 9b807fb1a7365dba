package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AdminConsole/internal/api/handlers"
)

const msgUnauthorized = "Authorization required"

// TokenSource источник сохранённого токена администратора
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type AuthLogger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequireSession пропускает запрос только с заголовком Authorization: Bearer,
// совпадающим с сохранённым токеном. Маршруты с именами из public проверку не проходят
func RequireSession(tokens TokenSource, log AuthLogger, public ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(public))
	for _, name := range public {
		skip[name] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route := mux.CurrentRoute(r); route != nil {
				if _, ok := skip[route.GetName()]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			stored, err := tokens.Token(r.Context())
			if err != nil {
				log.Error("%s %s - failed to read session token: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			presented := bearer(r.Header.Get("Authorization"))
			if stored == "" || presented == "" ||
				subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) != 1 {
				log.Warn("%s %s - unauthorized request from %s", r.Method, r.URL.Path, r.RemoteAddr)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearer(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}
