package aiflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/pkg/validate"
)

// ErrValidation marks requests with no message or no endpoint.
var ErrValidation = errors.New("validation error")

const defaultIOType = "chat"

// FlowRunner executes a Langflow flow component.
type FlowRunner interface {
	RunFlow(ctx context.Context, endpoint, message, inputType, outputType string) (json.RawMessage, error)
}

// Service resolves friendly endpoint names to flow component ids and runs
// them.
type Service struct {
	runner    FlowRunner
	endpoints map[string]string
}

func NewService(runner FlowRunner, endpoints map[string]string) *Service {
	if endpoints == nil {
		endpoints = map[string]string{}
	}
	return &Service{runner: runner, endpoints: endpoints}
}

// LoadEndpoints reads the name-to-component-id mapping from a JSON file.
func LoadEndpoints(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flow endpoints: %w", err)
	}
	var endpoints map[string]string
	if err := json.Unmarshal(data, &endpoints); err != nil {
		return nil, fmt.Errorf("parse flow endpoints: %w", err)
	}
	return endpoints, nil
}

// Run executes the flow behind endpoint with the given message. Names present
// in the mapping are translated to component ids; anything else is sent as a
// raw id. Empty input and output types default to chat.
func (s *Service) Run(ctx context.Context, message, endpoint, inputType, outputType string) (json.RawMessage, error) {
	if !validate.Required(message) {
		return nil, fmt.Errorf("message is required: %w", ErrValidation)
	}
	if !validate.Required(endpoint) {
		return nil, fmt.Errorf("endpoint is required: %w", ErrValidation)
	}
	if !validate.Required(inputType) {
		inputType = defaultIOType
	}
	if !validate.Required(outputType) {
		outputType = defaultIOType
	}

	resolved := endpoint
	if id, ok := s.endpoints[endpoint]; ok {
		resolved = id
	}
	return s.runner.RunFlow(ctx, resolved, message, inputType, outputType)
}
