package response

import (
	"encoding/json"
	"net/http"

	"github.com/priscillalife/site-api/pkg/logger"
)

// ErrorResponse is the JSON error envelope. Reset carries the rate-limit
// window end (epoch seconds) on 429s; Details carries the field-error list on
// validation failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Reset   int64  `json:"reset,omitempty"`
	Details any    `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// Error writes a plain error envelope.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Error: message})
}

// ValidationFailed writes a 400 with one detail entry per violated field.
func ValidationFailed(w http.ResponseWriter, details any) {
	JSON(w, http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: details})
}

// RateLimited writes a 429 carrying the window reset time.
func RateLimited(w http.ResponseWriter, message string, reset int64) {
	JSON(w, http.StatusTooManyRequests, ErrorResponse{Error: message, Reset: reset})
}
