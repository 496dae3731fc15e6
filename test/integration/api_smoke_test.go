package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/app/apiapp"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/config"
)

// newDegradedApp builds the app without a reachable document store. Routes
// must still register and system endpoints must still answer.
func newDegradedApp(t *testing.T) *apiapp.App {
	t.Helper()

	cfg := config.Default()
	cfg.Mongo.URI = "mongodb://127.0.0.1:1"
	cfg.Mongo.ConnectTimeout = 100 * time.Millisecond
	cfg.Mongo.SelectTimeout = 100 * time.Millisecond

	app, err := apiapp.New(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	return app
}

func TestHealthEndpoint(t *testing.T) {
	ts := httptest.NewServer(newDegradedApp(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode health payload: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := httptest.NewServer(newDegradedApp(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestStoreUnavailableSurfacesAsServerError(t *testing.T) {
	ts := httptest.NewServer(newDegradedApp(t).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/user/6578b1a2c3d4e5f678901234")
	if err != nil {
		t.Fatalf("user request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	var payload struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload.Code != "STORE_UNAVAILABLE" {
		t.Fatalf("unexpected error code: %s", payload.Code)
	}
}
