// Package handlers implements the HTTP endpoints of the weekday and astro
// API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
	apperrors "github.com/siamhora/siamhora/pkg/errors"
)

// errorBody is the uniform error payload.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to its HTTP status and error body.  Unrecognized
// errors become a generic 500 so internals never leak to callers.
func writeError(w http.ResponseWriter, logger logging.Logger, err error) {
	code := apperrors.GetCode(err)
	status := apperrors.HTTPStatusForCode(code)

	message := apperrors.DefaultMessageForCode(code)
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request error", logging.String("code", code.String()), logging.Err(err))
		// Do not leak internal detail on 5xx.
		message = apperrors.DefaultMessageForCode(code)
	}

	writeJSON(w, status, errorBody{Code: code.String(), Message: message})
}

// queryFloat reads a float query parameter, returning fallback when absent
// or unparsable.
func queryFloat(r *http.Request, name string, fallback float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

//Personal.AI order the ending
