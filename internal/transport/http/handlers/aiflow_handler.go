package handlers

import (
	"errors"
	"net/http"

	aiflowsvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/aiflow"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/transport/http/dto"
)

type AIFlowHandler struct {
	service *aiflowsvc.Service
}

func NewAIFlowHandler(service *aiflowsvc.Service) *AIFlowHandler {
	return &AIFlowHandler{service: service}
}

func (h *AIFlowHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "AIFLOW_SERVICE_UNAVAILABLE", "ai flow service is unavailable")
		return
	}

	var req dto.ExecuteAIRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	body, err := h.service.Run(r.Context(), req.Message, req.Endpoint, req.InputType, req.OutputType)
	if err != nil {
		if errors.Is(err, aiflowsvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "message and endpoint are required")
			return
		}
		writeUpstreamError(w, err)
		return
	}

	writeRawJSON(w, http.StatusOK, body)
}
