package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
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

const serviceName = "gemini"

// Client calls the Generative Language API directly over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	httpc   *http.Client
	log     *zap.Logger
}

func New(cfg config.GeminiConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpc:   httpclient.New(cfg.Timeout),
		log:     log,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText submits a plain text prompt and returns the model's text
// response verbatim.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, []part{{Text: prompt}})
}

// GenerateTextFromImage submits a prompt together with an inline image.
func (c *Client) GenerateTextFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	return c.generate(ctx, []part{
		{Text: prompt},
		{InlineData: &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	})
}

func (c *Client) generate(ctx context.Context, parts []part) (string, error) {
	callID := uuid.NewString()

	payload := generateRequest{Contents: []content{{Parts: parts}}}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal gemini payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", upstream.Errorf(serviceName, 0, "request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", upstream.Errorf(serviceName, resp.StatusCode, "read response: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if c.log != nil {
			c.log.Warn("gemini call failed",
				zap.String("call_id", callID),
				zap.String("model", c.model),
				zap.Int("status", resp.StatusCode),
			)
		}
		return "", &upstream.Error{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Message:    upstream.Snippet(body),
		}
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", upstream.Errorf(serviceName, resp.StatusCode, "decode response: %v", err)
	}
	if len(decoded.Candidates) == 0 {
		return "", upstream.Errorf(serviceName, resp.StatusCode, "model returned no candidates")
	}

	var sb strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", upstream.Errorf(serviceName, resp.StatusCode, "model returned empty text")
	}

	if c.log != nil {
		c.log.Debug("gemini call",
			zap.String("call_id", callID),
			zap.String("model", c.model),
			zap.Int("response_chars", len(text)),
		)
	}
	return text, nil
}
