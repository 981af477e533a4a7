// Structured API error types and the JSON error envelope.

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gameforge/studio/internal/blobstore"
	"github.com/gameforge/studio/internal/recordstore"
)

// ErrorCode classifies API errors for machine consumption.
type ErrorCode string

const (
	ErrorCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrorCodeUnknownNamespace  ErrorCode = "UNKNOWN_NAMESPACE"
	ErrorCodeMalformedDocument ErrorCode = "MALFORMED_DOCUMENT"
	ErrorCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrorCodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	ErrorCodeRateLimited       ErrorCode = "RATE_LIMITED"
	ErrorCodePayloadTooLarge   ErrorCode = "PAYLOAD_TOO_LARGE"
	ErrorCodeStorageError      ErrorCode = "STORAGE_ERROR"
	ErrorCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetails is the structured error information in a response.
type ErrorDetails struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the standard API error envelope.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// writeError maps err to an HTTP status and error code, then writes the
// standard envelope. Storage sentinels get their documented mappings;
// everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := ErrorCodeInternal
	switch {
	case errors.Is(err, recordstore.ErrNotFound), errors.Is(err, blobstore.ErrNotFound):
		status = http.StatusNotFound
		code = ErrorCodeNotFound
	case errors.Is(err, recordstore.ErrUnknownNamespace):
		status = http.StatusNotFound
		code = ErrorCodeUnknownNamespace
	case errors.Is(err, recordstore.ErrMalformedSnapshot):
		status = http.StatusBadRequest
		code = ErrorCodeMalformedDocument
	case errors.Is(err, recordstore.ErrCorruptData):
		code = ErrorCodeStorageError
	}
	writeErrorCode(w, status, code, err.Error())
}

// writeErrorCode writes the standard envelope with an explicit status and code.
func writeErrorCode(w http.ResponseWriter, status int, code ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := ErrorResponse{Error: ErrorDetails{Code: code, Message: message}}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode error response", "err", err)
	}
}

// writeJSON writes v as a 200 JSON response.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "err", err)
	}
}
