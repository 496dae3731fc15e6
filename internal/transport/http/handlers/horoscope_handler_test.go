package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/upstream"
	horoscopesvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/horoscope"
)

type stubHoroscopeAPI struct {
	gotSign enums.ZodiacSign
	gotDay  enums.HoroscopeDay
	body    json.RawMessage
	err     error
}

func (s *stubHoroscopeAPI) Daily(_ context.Context, sign enums.ZodiacSign, day enums.HoroscopeDay) (json.RawMessage, error) {
	s.gotSign, s.gotDay = sign, day
	return s.body, s.err
}

func (s *stubHoroscopeAPI) Monthly(_ context.Context, sign enums.ZodiacSign) (json.RawMessage, error) {
	s.gotSign = sign
	return s.body, s.err
}

func horoscopeRouter(api *stubHoroscopeAPI, profiles *stubProfiles) http.Handler {
	h := NewHoroscopeHandler(horoscopesvc.NewService(api, profiles))
	r := chi.NewRouter()
	r.Get("/horoscope/daily", h.Daily)
	r.Get("/horoscope/monthly", h.Monthly)
	r.Get("/horoscope/daily-by-user", h.DailyByUser)
	return r
}

func TestDailyHoroscopePassesThrough(t *testing.T) {
	api := &stubHoroscopeAPI{body: json.RawMessage(`{"data":{"horoscope_data":"a fine day"}}`)}
	router := horoscopeRouter(api, &stubProfiles{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/horoscope/daily?sign=aries&day=TOMORROW", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body %s", rec.Code, rec.Body)
	}
	if rec.Body.String() != `{"data":{"horoscope_data":"a fine day"}}` {
		t.Fatalf("response should pass through unmodified, got %s", rec.Body)
	}
	if api.gotSign != enums.ZodiacAries || api.gotDay != enums.DayTomorrow {
		t.Fatalf("unexpected upstream args: %s %s", api.gotSign, api.gotDay)
	}
}

func TestDailyHoroscopeBadSign(t *testing.T) {
	router := horoscopeRouter(&stubHoroscopeAPI{}, &stubProfiles{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/horoscope/daily?sign=ophiuchus", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if code := decodeError(t, rec); code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected error code: %s", code)
	}
}

func TestMonthlyHoroscopeUpstreamFailure(t *testing.T) {
	api := &stubHoroscopeAPI{err: upstream.Errorf("horoscope-api", http.StatusBadGateway, "boom")}
	router := horoscopeRouter(api, &stubProfiles{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/horoscope/monthly?sign=leo", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if code := decodeError(t, rec); code != "UPSTREAM_ERROR" {
		t.Fatalf("unexpected error code: %s", code)
	}
}

func TestDailyByUserRequiresUserID(t *testing.T) {
	router := horoscopeRouter(&stubHoroscopeAPI{}, &stubProfiles{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/horoscope/daily-by-user", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestDailyByUserDerivesSignFromProfile(t *testing.T) {
	api := &stubHoroscopeAPI{body: json.RawMessage(`{}`)}
	router := horoscopeRouter(api, &stubProfiles{profile: storedProfile()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/horoscope/daily-by-user?user_id=abc", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body %s", rec.Code, rec.Body)
	}
	if api.gotSign != enums.ZodiacAries {
		t.Fatalf("march 21 profile should map to Aries, got %s", api.gotSign)
	}
}
