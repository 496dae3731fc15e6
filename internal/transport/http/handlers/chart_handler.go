package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	chartssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/charts"
	geosvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/geo"
)

type ChartHandler struct {
	service *chartssvc.Service
}

func NewChartHandler(service *chartssvc.Service) *ChartHandler {
	return &ChartHandler{service: service}
}

func (h *ChartHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "CHART_SERVICE_UNAVAILABLE", "chart service is unavailable")
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "user_id is required")
		return
	}

	body, err := h.service.ChartURL(r.Context(), userID, chi.URLParam(r, "variant"))
	if err != nil {
		switch {
		case errors.Is(err, chartssvc.ErrUnknownVariant):
			writeBadRequest(w, "UNKNOWN_VARIANT", "unrecognized chart variant")
		case errors.Is(err, geosvc.ErrUnsupportedLocation):
			writeBadRequest(w, "UNSUPPORTED_LOCATION", "birth city is not supported")
		default:
			h.writeLookupOrUpstreamError(w, err)
		}
		return
	}
	writeRawJSON(w, http.StatusOK, body)
}

func (h *ChartHandler) writeLookupOrUpstreamError(w http.ResponseWriter, err error) {
	if isProfileError(err) {
		writeProfileError(w, err)
		return
	}
	writeUpstreamError(w, err)
}
