package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/upstream"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/pkg/validate"
)

// ErrBadInput marks missing URLs and payloads that are not decodable images.
var ErrBadInput = errors.New("bad input")

const defaultChartType = "birth"

// VisionModel analyzes an image guided by a text prompt.
type VisionModel interface {
	GenerateTextFromImage(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error)
}

// Service downloads a chart image and asks the vision model to interpret it.
type Service struct {
	model VisionModel
	httpc *http.Client
}

func NewService(model VisionModel, httpc *http.Client) *Service {
	return &Service{model: model, httpc: httpc}
}

// AnalyzeChart fetches the image at imageURL, verifies it is a real image and
// returns the model's reading of it. The model is never called with bytes
// that failed verification.
func (s *Service) AnalyzeChart(ctx context.Context, imageURL, chartType string) (string, error) {
	if !validate.Required(imageURL) {
		return "", fmt.Errorf("image url is required: %w", ErrBadInput)
	}
	if !validate.Required(chartType) {
		chartType = defaultChartType
	}

	data, err := s.download(ctx, imageURL)
	if err != nil {
		return "", err
	}

	mimeType, err := sniffImage(data)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"You are an experienced vedic astrologer. Analyze this %s chart image in detail. "+
			"Cover the planetary placements, house occupancy and any notable yogas you can read "+
			"from it, and explain what they mean in plain language.",
		strings.TrimSpace(chartType),
	)
	return s.model.GenerateTextFromImage(ctx, prompt, data, mimeType)
}

func (s *Service) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("image url %q: %w", imageURL, ErrBadInput)
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, upstream.Errorf("chart-image", 0, "download image: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstream.Errorf("chart-image", resp.StatusCode, "download image: unexpected status")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstream.Errorf("chart-image", resp.StatusCode, "read image: %v", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image is empty: %w", ErrBadInput)
	}
	return data, nil
}

func sniffImage(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("payload is not a decodable image: %w", ErrBadInput)
	}
	return "image/" + format, nil
}
