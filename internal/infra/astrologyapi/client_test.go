package astrologyapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/config"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/upstream"
)

func newTestClient(baseURL string) *Client {
	return New(config.AstrologyConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, nil)
}

func TestFetchChartURLSendsPayloadVerbatim(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"statusCode":200,"output":"https://charts.example/abc.svg"}`))
	}))
	defer ts.Close()

	req := ChartRequest{
		Year: 1994, Month: 3, Date: 21,
		Hours: 7, Minutes: 5, Seconds: 30,
		Latitude: 28.6139, Longitude: 77.2090, Timezone: 5.5,
		Settings: DefaultChartSettings(),
	}

	body, err := newTestClient(ts.URL).FetchChartURL(context.Background(), "navamsa-chart-url", req)
	if err != nil {
		t.Fatalf("fetch chart url: %v", err)
	}

	if gotPath != "/navamsa-chart-url" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("unexpected api key header: %s", gotKey)
	}
	if gotBody["year"] != float64(1994) || gotBody["month"] != float64(3) || gotBody["date"] != float64(21) {
		t.Fatalf("calendar fields not exploded: %+v", gotBody)
	}
	if gotBody["latitude"] != 28.6139 || gotBody["longitude"] != 77.2090 {
		t.Fatalf("unexpected coordinates: %+v", gotBody)
	}
	settings, ok := gotBody["settings"].(map[string]any)
	if !ok || settings["observation_point"] != "topocentric" || settings["ayanamsha"] != "lahiri" {
		t.Fatalf("unexpected settings: %+v", gotBody["settings"])
	}
	if string(body) != `{"statusCode":200,"output":"https://charts.example/abc.svg"}` {
		t.Fatalf("response should pass through unmodified, got %s", body)
	}
}

func TestFetchGemSuggestionDecodesCategoryMap(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"life": {"name": "Blue Sapphire", "semi_gem": "Amethyst"},
			"lucky": {"name": "Emerald", "semi_gem": "Peridot"}
		}`))
	}))
	defer ts.Close()

	suggestions, err := newTestClient(ts.URL).FetchGemSuggestion(context.Background(), GemRequest{Name: "Asha"})
	if err != nil {
		t.Fatalf("fetch gem suggestion: %v", err)
	}

	if len(suggestions) != 2 {
		t.Fatalf("unexpected category count: %d", len(suggestions))
	}
	if suggestions["life"]["name"] != "Blue Sapphire" {
		t.Fatalf("unexpected life gem: %+v", suggestions["life"])
	}
	if suggestions["lucky"]["semi_gem"] != "Peridot" {
		t.Fatalf("unexpected lucky semi gem: %+v", suggestions["lucky"])
	}
}

func TestNon2xxIsUpstreamErrorWithStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).FetchChartURL(context.Background(), "horoscope-chart-url", ChartRequest{})

	var ue *upstream.Error
	if !errors.As(err, &ue) {
		t.Fatalf("expected upstream.Error, got %v", err)
	}
	if ue.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", ue.StatusCode)
	}
}
