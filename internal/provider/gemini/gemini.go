// Package gemini implements the decision capability on top of Google's
// Gemini API via the official genai SDK.
package gemini

import (
	"context"
	"sync"

	provider "github.com/jmallari/gofer/internal/provider/models"
)

// Provider implements the provider interface for Google Gemini.
type Provider struct {
	client    Client
	mu        sync.RWMutex
	modelName string
}

// New creates a new Provider with the specified client and model.
func New(client Client, modelName string) *Provider {
	return &Provider{
		client:    client,
		modelName: modelName,
	}
}

// Generate sends a request to the Gemini API and returns the response.
func (p *Provider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	p.mu.RLock()
	model := p.modelName
	p.mu.RUnlock()

	contents := toGeminiContents(req.History)
	config := toGeminiConfig(req.Config)

	if len(req.Tools) > 0 {
		config.Tools = toGeminiTools(req.Tools)
	}

	resp, err := p.client.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp)
}

// SetModel switches the model used for subsequent requests.
func (p *Provider) SetModel(model string) {
	p.mu.Lock()
	p.modelName = model
	p.mu.Unlock()
}

// Model returns the currently configured model name.
func (p *Provider) Model() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modelName
}
