package handlers

import (
	"errors"
	"net/http"

	analysissvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/analysis"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/transport/http/dto"
	httperrors "github.com/AbhigyaKrishna/margdarshak-backend/internal/transport/http/errors"
)

type AnalysisHandler struct {
	service *analysissvc.Service
}

func NewAnalysisHandler(service *analysissvc.Service) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "ANALYSIS_SERVICE_UNAVAILABLE", "analysis service is unavailable")
		return
	}

	var req dto.AnalyzeChartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "BAD_INPUT", "invalid request body")
		return
	}

	analysis, err := h.service.AnalyzeChart(r.Context(), req.ImageURL, req.ChartType)
	if err != nil {
		if errors.Is(err, analysissvc.ErrBadInput) {
			writeBadRequest(w, "BAD_INPUT", "image_url must point to a decodable image")
			return
		}
		writeUpstreamError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.AnalyzeChartResponse{Analysis: analysis})
}
