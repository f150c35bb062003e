// Package httpx contains the HTTP transport layer: JSON helpers, middleware,
// handlers, and the router.
package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/vitaltrack/vitaltrack/internal/errors"
)

// maxRequestBody caps JSON request bodies. None of the API payloads come
// close to this.
const maxRequestBody = 1 << 20

// DecodeJSON decodes JSON from the request body into the destination and
// handles errors. Returns true if successful, false if there was an error
// (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g. client disconnect) can't be recovered
		// from here.
		return
	}
}

// WriteError writes the single-message error body: {"error": msg}.
func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, map[string]string{"error": msg})
}

// WriteFieldErrors writes the validation body: {"errors": {field: [msgs]}}.
func WriteFieldErrors(w http.ResponseWriter, fieldErrors map[string][]string) {
	WriteJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors})
}

// RenderError maps an application error onto the wire contract. AppError
// codes choose the status; validation errors with a field render as field
// errors; anything unrecognized becomes a generic 500 so internals never
// leak to clients.
func RenderError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation:
		if appErr.Field != "" {
			WriteFieldErrors(w, map[string][]string{appErr.Field: {appErr.Message}})
			return
		}
		WriteError(w, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrCodeUnauthorized:
		WriteError(w, http.StatusUnauthorized, appErr.Message)
	case apperrors.ErrCodeNotFound:
		WriteError(w, http.StatusNotFound, appErr.Message)
	case apperrors.ErrCodeConflict:
		WriteError(w, http.StatusConflict, appErr.Message)
	case apperrors.ErrCodeUnavailable:
		WriteError(w, http.StatusServiceUnavailable, appErr.Message)
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
