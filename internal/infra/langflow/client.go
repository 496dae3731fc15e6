package langflow

import (
	"bytes"
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
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/httpclient"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/upstream"
)

const serviceName = "langflow"

// Client executes flows on a hosted Langflow deployment. The upstream JSON
// response is returned unmodified.
type Client struct {
	baseURL string
	flowID  string
	apiKey  string
	httpc   *http.Client
	log     *zap.Logger
}

func New(cfg config.LangflowConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		flowID:  cfg.FlowID,
		apiKey:  cfg.APIKey,
		httpc:   httpclient.New(cfg.Timeout),
		log:     log,
	}
}

type runPayload struct {
	InputValue string `json:"input_value"`
	OutputType string `json:"output_type"`
	InputType  string `json:"input_type"`
}

func (c *Client) RunFlow(ctx context.Context, endpoint, message, inputType, outputType string) (json.RawMessage, error) {
	callID := uuid.NewString()

	data, err := json.Marshal(runPayload{
		InputValue: message,
		OutputType: outputType,
		InputType:  inputType,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal langflow payload: %w", err)
	}

	runURL := fmt.Sprintf("%s/lf/%s/api/v1/run/%s", c.baseURL, c.flowID, url.PathEscape(endpoint))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, runURL, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build langflow request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

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
			c.log.Warn("langflow call failed",
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
		c.log.Debug("langflow call",
			zap.String("call_id", callID),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
	}
	return json.RawMessage(body), nil
}
