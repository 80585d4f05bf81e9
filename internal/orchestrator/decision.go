package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/jmallari/gofer/internal/orchestrator/models"
	provider "github.com/jmallari/gofer/internal/provider/models"
	"github.com/jmallari/gofer/internal/tool"
)

const (
	greetingReply = "Hey there! I'm ready to help. What's on your mind?"
	apologyReply  = "Sorry, I hit an error. Please try again."

	// singleJokeCallID tags the fast-path single joke request.
	singleJokeCallID = "joke_call"

	// maxFastPathJokes bounds how many jokes the digit fast path requests.
	maxFastPathJokes = 5
)

// DecisionStep produces the next agent message for a conversation: a direct
// answer, or one or more tool calls. Cheap string-matched intents are handled
// ahead of the model; the model's own output passes through unchanged.
type DecisionStep struct {
	provider    provider.Provider
	tools       []provider.ToolDefinition
	temperature float32
	logger      *slog.Logger

	// pickCategory draws a random joke category for multi-joke requests.
	// Swappable for deterministic tests.
	pickCategory func() string
}

// NewDecisionStep wires the decision step to its model, tool definitions and
// sampling temperature.
func NewDecisionStep(p provider.Provider, tools []provider.ToolDefinition, temperature float32, logger *slog.Logger) *DecisionStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &DecisionStep{
		provider:    p,
		tools:       tools,
		temperature: temperature,
		logger:      logger,
		pickCategory: func() string {
			return tool.JokeCategories[rand.Intn(len(tool.JokeCategories))]
		},
	}
}

// Decide returns exactly one message for the given history. A fault in the
// decision capability degrades to a fixed apology; Decide never fails the
// run.
//
// The fast paths only fire when the newest message is the user's own text:
// once tool results are in play the general path sees them.
func (d *DecisionStep) Decide(ctx context.Context, history []models.Message) models.Message {
	if len(history) > 0 {
		if last := history[len(history)-1]; last.Role == models.RoleUser {
			if msg, ok := d.fastPath(last.Content); ok {
				return msg
			}
		}
	}

	resp, err := d.provider.Generate(ctx, &provider.GenerateRequest{
		History: history,
		Config:  &provider.GenerateConfig{Temperature: &d.temperature},
		Tools:   d.tools,
	})
	if err != nil {
		d.logger.Error("decision capability fault", "error", err)
		return models.Message{Role: models.RoleError, Content: apologyReply}
	}

	switch resp.Content.Type {
	case provider.ResponseTypeToolCall:
		if len(resp.Content.ToolCalls) == 0 {
			d.logger.Error("decision capability returned empty tool call list")
			return models.Message{Role: models.RoleError, Content: apologyReply}
		}
		return models.Message{Role: models.RoleAgent, ToolCalls: resp.Content.ToolCalls}

	case provider.ResponseTypeRefusal:
		return models.Message{
			Role:    models.RoleError,
			Content: fmt.Sprintf("Model refused: %s", resp.Content.RefusalReason),
		}

	default:
		return models.Message{Role: models.RoleAgent, Content: resp.Content.Text}
	}
}

// fastPath matches cheap intents against the user's text, first match wins.
// Matching is case-insensitive and ignores surrounding punctuation because it
// is substring-based.
func (d *DecisionStep) fastPath(text string) (models.Message, bool) {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "how are you") || strings.Contains(lower, "hey") {
		return models.Message{Role: models.RoleAgent, Content: greetingReply}, true
	}

	if strings.Contains(lower, "tell me a joke") || strings.Contains(lower, "another joke") {
		return models.Message{
			Role: models.RoleAgent,
			ToolCalls: []models.ToolCall{{
				ID:   singleJokeCallID,
				Name: "get_joke",
				Args: map[string]any{"category": "Any"},
			}},
		}, true
	}

	if strings.Contains(lower, "joke") {
		if n := smallestDigit(lower); n > 0 {
			calls := make([]models.ToolCall, 0, n)
			for i := range n {
				calls = append(calls, models.ToolCall{
					ID:   fmt.Sprintf("%s_%d", singleJokeCallID, i),
					Name: "get_joke",
					Args: map[string]any{"category": d.pickCategory()},
				})
			}
			return models.Message{Role: models.RoleAgent, ToolCalls: calls}, true
		}
	}

	return models.Message{}, false
}

// smallestDigit returns the smallest digit 1..maxFastPathJokes present
// anywhere in the text, or 0 when none is.
func smallestDigit(text string) int {
	for n := 1; n <= maxFastPathJokes; n++ {
		if strings.ContainsRune(text, rune('0'+n)) {
			return n
		}
	}
	return 0
}
