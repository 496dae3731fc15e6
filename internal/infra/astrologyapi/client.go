package astrologyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/config"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/httpclient"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/upstream"
)

const (
	serviceName = "astrology-api"

	gemSuggestionEndpoint = "gem-suggestion"
)

// ChartRequest is the payload shape the chart-generation API expects:
// calendar fields exploded, coordinates resolved, fixed timezone and
// computation settings. It is sent verbatim.
type ChartRequest struct {
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	Date      int           `json:"date"`
	Hours     int           `json:"hours"`
	Minutes   int           `json:"minutes"`
	Seconds   int           `json:"seconds"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  float64       `json:"timezone"`
	Settings  ChartSettings `json:"settings"`
}

type ChartSettings struct {
	ObservationPoint string `json:"observation_point"`
	Ayanamsha        string `json:"ayanamsha"`
}

// DefaultChartSettings returns the fixed astronomical configuration used for
// every chart and gem request.
func DefaultChartSettings() ChartSettings {
	return ChartSettings{
		ObservationPoint: "topocentric",
		Ayanamsha:        "lahiri",
	}
}

type GemRequest struct {
	Name        string  `json:"name"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DateOfBirth string  `json:"date_of_birth"`
	TimeOfBirth string  `json:"time_of_birth"`
	Gender      string  `json:"gender"`
	Timezone    float64 `json:"timezone"`
}

// GemRecord is one gemstone category entry as returned by the API, plus the
// gem_description key attached during enrichment. Unknown upstream fields
// are preserved.
type GemRecord map[string]any

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     *zap.Logger
}

func New(cfg config.AstrologyConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpc:   httpclient.New(cfg.Timeout),
		log:     log,
	}
}

// FetchChartURL posts a chart request to the named endpoint and returns the
// upstream response unmodified (expected to contain a chart image URL).
func (c *Client) FetchChartURL(ctx context.Context, endpoint string, req ChartRequest) (json.RawMessage, error) {
	return c.post(ctx, endpoint, req)
}

// FetchGemSuggestion returns the gem category mapping for a birth record.
func (c *Client) FetchGemSuggestion(ctx context.Context, req GemRequest) (map[string]GemRecord, error) {
	body, err := c.post(ctx, gemSuggestionEndpoint, req)
	if err != nil {
		return nil, err
	}

	var suggestions map[string]GemRecord
	if err := json.Unmarshal(body, &suggestions); err != nil {
		return nil, upstream.Errorf(serviceName, 0, "decode gem suggestion response: %v", err)
	}
	return suggestions, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload any) (json.RawMessage, error) {
	callID := uuid.NewString()

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal astrology payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build astrology request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, upstream.Errorf(serviceName, 0, "request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstream.Errorf(serviceName, resp.StatusCode, "read response: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if c.log != nil {
			c.log.Warn("astrology api call failed",
				zap.String("call_id", callID),
				zap.String("endpoint", endpoint),
				zap.Int("status", resp.StatusCode),
			)
		}
		return nil, &upstream.Error{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    upstream.Snippet(body),
		}
	}

	if c.log != nil {
		c.log.Debug("astrology api call",
			zap.String("call_id", callID),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
	}
	return json.RawMessage(body), nil
}
