package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/upstream"
	userssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/users"
	httperrors "github.com/AbhigyaKrishna/margdarshak-backend/internal/transport/http/errors"
)

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{Code: code, Message: message})
}

func writeNotFound(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusNotFound, httperrors.APIError{Code: code, Message: message})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{Code: code, Message: message})
}

// writeRawJSON forwards an upstream JSON payload unmodified.
func writeRawJSON(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func isProfileError(err error) bool {
	return errors.Is(err, userssvc.ErrNotFound) ||
		errors.Is(err, userssvc.ErrValidation) ||
		errors.Is(err, userssvc.ErrStoreUnavailable)
}

// writeProfileError maps profile lookup failures shared by every endpoint
// that loads a stored profile first.
func writeProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userssvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "user profile not found")
	case errors.Is(err, userssvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "stored profile cannot be read")
	case errors.Is(err, userssvc.ErrStoreUnavailable):
		writeInternal(w, "STORE_UNAVAILABLE", "record store is unavailable")
	default:
		writeInternal(w, "INTERNAL_ERROR", "internal server error")
	}
}

func writeUpstreamError(w http.ResponseWriter, err error) {
	var ue *upstream.Error
	if errors.As(err, &ue) {
		writeInternal(w, "UPSTREAM_ERROR", ue.Service+" request failed")
		return
	}
	writeInternal(w, "INTERNAL_ERROR", "internal server error")
}
