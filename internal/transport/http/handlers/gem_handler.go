package handlers

import (
	"errors"
	"net/http"

	gemssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/gems"
	geosvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/geo"
	httperrors "github.com/AbhigyaKrishna/margdarshak-backend/internal/transport/http/errors"
)

type GemHandler struct {
	service *gemssvc.Service
}

func NewGemHandler(service *gemssvc.Service) *GemHandler {
	return &GemHandler{service: service}
}

func (h *GemHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "GEM_SERVICE_UNAVAILABLE", "gem service is unavailable")
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "user_id is required")
		return
	}

	suggestions, err := h.service.Suggest(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, geosvc.ErrUnsupportedLocation):
			writeBadRequest(w, "UNSUPPORTED_LOCATION", "birth city is not supported")
		case isProfileError(err):
			writeProfileError(w, err)
		default:
			writeUpstreamError(w, err)
		}
		return
	}

	httperrors.Write(w, http.StatusOK, suggestions)
}
