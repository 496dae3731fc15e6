package handlers

import (
	"net/http"

	httperrors "github.com/AbhigyaKrishna/margdarshak-backend/internal/transport/http/errors"
)

type SystemHandler struct {
	appName string
}

func NewSystemHandler(appName string) *SystemHandler {
	return &SystemHandler{appName: appName}
}

func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	httperrors.Write(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *SystemHandler) Root(w http.ResponseWriter, _ *http.Request) {
	httperrors.Write(w, http.StatusOK, map[string]string{
		"message": "Welcome to the " + h.appName + " API",
	})
}
