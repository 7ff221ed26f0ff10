package middleware

import "net/http"

// ContentTypeJSON marks every response as JSON. Handlers that stream other
// content types (statement exports) override the header before writing.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
