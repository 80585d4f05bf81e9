package tool

import (
	"context"
	"encoding/json"
	"fmt"

	provider "github.com/jmallari/gofer/internal/provider/models"
	"github.com/mitchellh/mapstructure"
)

// Validator is an interface for request types that support validation
type Validator interface {
	Validate() error
}

// Executor is a function that executes a tool with typed request/response.
type Executor[Req, Resp any] func(context.Context, Req) (Resp, error)

// Base provides common tool functionality using generics, centralizing:
// - Argument decoding (mapstructure)
// - Request validation
// - Response marshaling, flattening single text payloads
// - Error handling
type Base[Req, Resp any] struct {
	name        string
	description string
	definition  provider.ToolDefinition
	executor    Executor[Req, Resp]
}

// NewBase creates a tool from a typed executor function.
func NewBase[Req, Resp any](
	name string,
	description string,
	params *provider.ParameterSchema,
	executor Executor[Req, Resp],
) *Base[Req, Resp] {
	return &Base[Req, Resp]{
		name:        name,
		description: description,
		definition: provider.ToolDefinition{
			Name:        name,
			Description: description,
			Parameters:  params,
		},
		executor: executor,
	}
}

// Name implements Tool
func (b *Base[Req, Resp]) Name() string {
	return b.name
}

// Description implements Tool
func (b *Base[Req, Resp]) Description() string {
	return b.description
}

// Definition implements Tool
func (b *Base[Req, Resp]) Definition() provider.ToolDefinition {
	return b.definition
}

// Execute implements Tool:
// 1. Decodes the args map into a typed request using mapstructure
// 2. Validates the request if it implements Validator
// 3. Calls the executor function with the typed request
// 4. Marshals the response, flattening a lone string payload to plain text
func (b *Base[Req, Resp]) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req Req

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &req,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", fmt.Errorf("%s validation failed: %w", b.name, err)
		}
	}

	resp, err := b.executor(ctx, req)
	if err != nil {
		return "", err
	}

	return marshalPayload(resp)
}

// marshalPayload renders a tool response for the conversation. A payload that
// is an object with exactly one string field collapses to that string (a joke
// is shown as the joke, not as `{"joke": ...}`); everything else stays JSON.
func marshalPayload(resp any) (string, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	var object map[string]any
	if err := json.Unmarshal(raw, &object); err == nil && len(object) == 1 {
		for _, v := range object {
			if s, ok := v.(string); ok {
				return s, nil
			}
		}
	}

	return string(raw), nil
}
