package handlers

import (
	"errors"
	"net/http"

	horoscopesvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/horoscope"
)

type HoroscopeHandler struct {
	service *horoscopesvc.Service
}

func NewHoroscopeHandler(service *horoscopesvc.Service) *HoroscopeHandler {
	return &HoroscopeHandler{service: service}
}

func (h *HoroscopeHandler) Daily(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "HOROSCOPE_SERVICE_UNAVAILABLE", "horoscope service is unavailable")
		return
	}

	query := r.URL.Query()
	body, err := h.service.Daily(r.Context(), query.Get("sign"), query.Get("day"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeRawJSON(w, http.StatusOK, body)
}

func (h *HoroscopeHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "HOROSCOPE_SERVICE_UNAVAILABLE", "horoscope service is unavailable")
		return
	}

	body, err := h.service.Monthly(r.Context(), r.URL.Query().Get("sign"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeRawJSON(w, http.StatusOK, body)
}

func (h *HoroscopeHandler) DailyByUser(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "HOROSCOPE_SERVICE_UNAVAILABLE", "horoscope service is unavailable")
		return
	}

	query := r.URL.Query()
	userID := query.Get("user_id")
	if userID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "user_id is required")
		return
	}

	body, err := h.service.DailyForUser(r.Context(), userID, query.Get("day"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeRawJSON(w, http.StatusOK, body)
}

func (h *HoroscopeHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, horoscopesvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "unrecognized sign or day")
	case isProfileError(err):
		writeProfileError(w, err)
	default:
		writeUpstreamError(w, err)
	}
}
