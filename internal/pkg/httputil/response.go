package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/ignite/mailcheck/internal/pkg/logger"
)

// ErrorResponse is the standard error envelope for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status code. Content-Type is
// set automatically.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

// OK writes a 200 response with the given data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Error writes a JSON error response with the given machine-readable code.
// The code is the whole client-visible body; anything worth diagnosing
// belongs in the server log, not here.
func Error(w http.ResponseWriter, status int, code string) {
	JSON(w, status, ErrorResponse{Error: code})
}

// BadRequest writes a 400 error.
func BadRequest(w http.ResponseWriter, code string) {
	Error(w, http.StatusBadRequest, code)
}

// NotFound writes a 404 error.
func NotFound(w http.ResponseWriter, code string) {
	Error(w, http.StatusNotFound, code)
}

// Internal writes a 500 error with the given code after logging the real
// error server-side. Internals never leak to the client.
func Internal(w http.ResponseWriter, code string, err error) {
	logger.Error("internal error", "code", code, "error", err)
	Error(w, http.StatusInternalServerError, code)
}
