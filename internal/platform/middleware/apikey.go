package middleware

import (
	"log/slog"
	"net/http"

	"paylens/internal/platform/secrets"
)

const apiKeyHeader = "X-API-Key"

// RequireAPIKey guards write endpoints with a shared API key checked against
// a bcrypt hash. An empty hash disables the check, which keeps local
// development friction-free.
func RequireAPIKey(keyHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(apiKeyHeader)
			if key == "" {
				logger.WarnContext(r.Context(), "unauthorized access - missing api key",
					"request_id", GetRequestID(r.Context()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"Missing API key"}`))
				return
			}

			if err := secrets.Verify(key, keyHash); err != nil {
				logger.WarnContext(r.Context(), "unauthorized access - invalid api key",
					"request_id", GetRequestID(r.Context()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"Invalid API key"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
