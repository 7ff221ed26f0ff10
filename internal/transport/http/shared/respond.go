// Package shared holds the response helpers every HTTP handler uses, so the
// wire shape of successes and failures stays uniform across the API.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "paylens/pkg/domain-errors"
)

// errorResponse is the uniform error body. error_description is omitted for
// internal errors so implementation details never reach clients.
type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error onto the wire: HTTP status from the code,
// body carrying the code string and, for non-internal errors, the message.
// Errors without a domain code are treated as internal.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := errorResponse{Error: string(code)}

	if code != dErrors.CodeInternal {
		var domainErr dErrors.Error
		if errors.As(err, &domainErr) {
			body.Description = domainErr.Message
		}
	}

	WriteJSON(w, dErrors.HTTPStatus(code), body)
}
