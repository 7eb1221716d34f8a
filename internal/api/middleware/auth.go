package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/nangenlabs/NGL-SiteService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном админского контура
const AdminTokenHeader = "X-Admin-Token"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware проверки статического админского токена.
// Сравнение за постоянное время, чтобы не светить длину совпавшего префикса.
func Auth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)
			if provided == "" {
				logger.Warn("Auth: missing %s header for %s %s", AdminTokenHeader, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "missing admin token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("Auth: invalid admin token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
