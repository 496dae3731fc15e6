package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/model"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/astrologyapi"
	chartssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/charts"
	geosvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/geo"
)

type stubProfiles struct {
	profile model.UserProfile
	err     error
}

func (s *stubProfiles) Get(_ context.Context, _ string) (model.UserProfile, error) {
	return s.profile, s.err
}

type stubLocator struct {
	city geosvc.City
	err  error
}

func (s *stubLocator) Resolve(_ string) (geosvc.City, error) {
	return s.city, s.err
}

type stubChartAPI struct {
	gotEndpoint string
	body        json.RawMessage
	err         error
}

func (s *stubChartAPI) FetchChartURL(_ context.Context, endpoint string, _ astrologyapi.ChartRequest) (json.RawMessage, error) {
	s.gotEndpoint = endpoint
	return s.body, s.err
}

func storedProfile() model.UserProfile {
	tob, _ := model.ParseClockTime("07:05:30")
	return model.UserProfile{
		ID:          "6578b1a2c3d4e5f678901234",
		Name:        "Asha",
		DateOfBirth: model.NewDate(1994, time.March, 21),
		TimeOfBirth: tob,
		Gender:      enums.GenderFemale,
		State:       "Delhi",
		City:        "Delhi",
	}
}

func chartRouter(profiles *stubProfiles, locator *stubLocator, api *stubChartAPI) http.Handler {
	h := NewChartHandler(chartssvc.NewService(profiles, locator, api, 5.5))
	r := chi.NewRouter()
	r.Post("/horoscope/{variant}-chart", h.Generate)
	return r
}

func TestGenerateChartPassesThroughResponse(t *testing.T) {
	api := &stubChartAPI{body: json.RawMessage(`{"output":"https://charts/img.png"}`)}
	router := chartRouter(
		&stubProfiles{profile: storedProfile()},
		&stubLocator{city: geosvc.City{Name: "Delhi", Lat: 28.6139, Lon: 77.2090}},
		api,
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/horoscope/navamsa-chart?user_id=abc", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body %s", rec.Code, rec.Body)
	}
	if rec.Body.String() != `{"output":"https://charts/img.png"}` {
		t.Fatalf("response should pass through unmodified, got %s", rec.Body)
	}
	if api.gotEndpoint != "navamsa-chart-url" {
		t.Fatalf("unexpected upstream endpoint: %s", api.gotEndpoint)
	}
}

func TestGenerateChartMissingUserID(t *testing.T) {
	router := chartRouter(&stubProfiles{profile: storedProfile()}, &stubLocator{}, &stubChartAPI{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/horoscope/d1-chart", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if code := decodeError(t, rec); code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected error code: %s", code)
	}
}

func TestGenerateChartUnknownVariant(t *testing.T) {
	router := chartRouter(&stubProfiles{profile: storedProfile()}, &stubLocator{}, &stubChartAPI{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/horoscope/d99-chart?user_id=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d body %s", rec.Code, rec.Body)
	}
	if code := decodeError(t, rec); code != "UNKNOWN_VARIANT" {
		t.Fatalf("unexpected error code: %s", code)
	}
}

func TestGenerateChartUnsupportedCity(t *testing.T) {
	router := chartRouter(
		&stubProfiles{profile: storedProfile()},
		&stubLocator{err: geosvc.ErrUnsupportedLocation},
		&stubChartAPI{},
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/horoscope/d1-chart?user_id=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if code := decodeError(t, rec); code != "UNSUPPORTED_LOCATION" {
		t.Fatalf("unexpected error code: %s", code)
	}
}
