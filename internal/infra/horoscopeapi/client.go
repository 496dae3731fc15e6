package horoscopeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/config"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/httpclient"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/upstream"
)

const serviceName = "horoscope-api"

// Client talks to the public horoscope content API. Responses are passed
// through verbatim; this client never interprets the payload.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

func New(cfg config.HoroscopeConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   httpclient.New(cfg.Timeout),
		log:     log,
	}
}

func (c *Client) Daily(ctx context.Context, sign enums.ZodiacSign, day enums.HoroscopeDay) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("sign", string(sign))
	query.Set("day", string(day))
	return c.get(ctx, "/get-horoscope/daily", query)
}

func (c *Client) Monthly(ctx context.Context, sign enums.ZodiacSign) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("sign", string(sign))
	return c.get(ctx, "/get-horoscope/monthly", query)
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	callID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build horoscope request: %w", err)
	}

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
			c.log.Warn("horoscope api call failed",
				zap.String("call_id", callID),
				zap.String("path", path),
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
		c.log.Debug("horoscope api call",
			zap.String("call_id", callID),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
	}
	return json.RawMessage(body), nil
}
