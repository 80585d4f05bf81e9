package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/jmallari/gofer/internal/orchestrator/models"
	provider "github.com/jmallari/gofer/internal/provider/models"
)

// MockClient implements Client for testing
type MockClient struct {
	GenerateContentFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (m *MockClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, model, contents, config)
	}
	return nil, errors.New("not implemented")
}

func textCandidate(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  "model",
					Parts: []*genai.Part{genai.NewPartFromText(text)},
				},
			},
		},
	}
}

func TestGenerate_TextResponse(t *testing.T) {
	var gotModel string
	mockClient := &MockClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			gotModel = model
			return textCandidate("Hello!"), nil
		},
	}

	p := New(mockClient, "gemini-2.0-flash")

	resp, err := p.Generate(context.Background(), &provider.GenerateRequest{
		History: []models.Message{{Role: models.RoleUser, Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", gotModel)
	assert.Equal(t, provider.ResponseTypeText, resp.Content.Type)
	assert.Equal(t, "Hello!", resp.Content.Text)
}

func TestGenerate_ToolCallResponse(t *testing.T) {
	mockClient := &MockClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Role: "model",
							Parts: []*genai.Part{
								{
									FunctionCall: &genai.FunctionCall{
										ID:   "call_1",
										Name: "get_joke",
										Args: map[string]any{"category": "Pun"},
									},
								},
							},
						},
					},
				},
			}, nil
		},
	}

	p := New(mockClient, "gemini-2.0-flash")

	resp, err := p.Generate(context.Background(), &provider.GenerateRequest{
		History: []models.Message{{Role: models.RoleUser, Content: "tell me a pun"}},
	})

	require.NoError(t, err)
	assert.Equal(t, provider.ResponseTypeToolCall, resp.Content.Type)
	require.Len(t, resp.Content.ToolCalls, 1)
	assert.Equal(t, "call_1", resp.Content.ToolCalls[0].ID)
	assert.Equal(t, "get_joke", resp.Content.ToolCalls[0].Name)
	assert.Equal(t, "Pun", resp.Content.ToolCalls[0].Args["category"])
}

func TestGenerate_MissingCallIDGetsMinted(t *testing.T) {
	mockClient := &MockClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Role: "model",
							Parts: []*genai.Part{
								{FunctionCall: &genai.FunctionCall{Name: "get_joke"}},
							},
						},
					},
				},
			}, nil
		},
	}

	p := New(mockClient, "gemini-2.0-flash")

	resp, err := p.Generate(context.Background(), &provider.GenerateRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Content.ToolCalls, 1)
	assert.NotEmpty(t, resp.Content.ToolCalls[0].ID)
}

func TestGenerate_SafetyRefusal(t *testing.T) {
	mockClient := &MockClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{FinishReason: genai.FinishReasonSafety},
				},
			}, nil
		},
	}

	p := New(mockClient, "gemini-2.0-flash")

	resp, err := p.Generate(context.Background(), &provider.GenerateRequest{})

	require.NoError(t, err)
	assert.Equal(t, provider.ResponseTypeRefusal, resp.Content.Type)
	assert.NotEmpty(t, resp.Content.RefusalReason)
}

func TestGenerate_MapsAPIErrors(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		wantCode     provider.ErrorCode
		wantSentinel error
		retryable    bool
	}{
		{"auth", 401, provider.ErrorCodeAuth, provider.ErrAuthentication, false},
		{"forbidden", 403, provider.ErrorCodeAuth, provider.ErrAuthentication, false},
		{"rate limit", 429, provider.ErrorCodeRateLimit, provider.ErrRateLimit, true},
		{"invalid request", 400, provider.ErrorCodeInvalidRequest, provider.ErrInvalidRequest, false},
		{"unavailable", 503, provider.ErrorCodeUnavailable, provider.ErrServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockClient{
				GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return nil, &genai.APIError{Code: tt.code, Message: "upstream says no"}
				},
			}

			p := New(mockClient, "gemini-2.0-flash")

			_, err := p.Generate(context.Background(), &provider.GenerateRequest{})

			var provErr *provider.ProviderError
			require.ErrorAs(t, err, &provErr)
			assert.Equal(t, tt.wantCode, provErr.Code)
			assert.Equal(t, tt.retryable, provErr.Retryable)
			// Callers can branch on the sentinel without knowing the SDK type.
			assert.ErrorIs(t, err, tt.wantSentinel)
		})
	}
}

func TestGenerate_DeadlineBecomesTimeout(t *testing.T) {
	mockClient := &MockClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return nil, context.DeadlineExceeded
		},
	}

	p := New(mockClient, "gemini-2.0-flash")

	_, err := p.Generate(context.Background(), &provider.GenerateRequest{})

	var provErr *provider.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, provider.ErrorCodeTimeout, provErr.Code)
	assert.True(t, provErr.Retryable)
	assert.ErrorIs(t, err, provider.ErrTimeout)
}

func TestGenerate_NetworkErrorFallback(t *testing.T) {
	mockClient := &MockClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return nil, errors.New("connection reset")
		},
	}

	p := New(mockClient, "gemini-2.0-flash")

	_, err := p.Generate(context.Background(), &provider.GenerateRequest{})

	var provErr *provider.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, provider.ErrorCodeNetwork, provErr.Code)
	assert.True(t, provErr.Retryable)
}

func TestSetModel(t *testing.T) {
	p := New(&MockClient{}, "gemini-2.0-flash")

	p.SetModel("gemini-2.5-pro")

	assert.Equal(t, "gemini-2.5-pro", p.Model())
}
