package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jmallari/gofer/internal/orchestrator/models"
	"github.com/jmallari/gofer/internal/tool"
)

// ToolExecutionStep resolves and runs the tool calls of a single agent
// message. Every call yields exactly one result; failures (unknown tool,
// execution error, timeout) become error-text payloads rather than faults, so
// a broken tool never aborts the run.
type ToolExecutionStep struct {
	registry *tool.Registry
	timeout  time.Duration
	logger   *slog.Logger
}

// NewToolExecutionStep builds the executor. timeout bounds each individual
// tool call; zero disables the bound.
func NewToolExecutionStep(registry *tool.Registry, timeout time.Duration, logger *slog.Logger) *ToolExecutionStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ToolExecutionStep{
		registry: registry,
		timeout:  timeout,
		logger:   logger,
	}
}

// Execute runs all calls concurrently and returns results in request order.
func (e *ToolExecutionStep) Execute(ctx context.Context, calls []models.ToolCall) []models.ToolResult {
	results := make([]models.ToolResult, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		g.Go(func() error {
			results[i] = e.executeOne(gctx, call)
			return nil
		})
	}
	// Workers only ever return nil; Wait is for joining.
	_ = g.Wait()

	return results
}

func (e *ToolExecutionStep) executeOne(ctx context.Context, call models.ToolCall) models.ToolResult {
	result := models.ToolResult{ID: call.ID, Name: call.Name}

	t, ok := e.registry.Lookup(call.Name)
	if !ok {
		result.Content = fmt.Sprintf("Error: tool %q not found", call.Name)
		return result
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	started := time.Now()
	content, err := t.Execute(ctx, call.Args)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			reason = fmt.Sprintf("tool %q timed out", call.Name)
		}
		e.logger.Warn("tool failed", "tool", call.Name, "error", err, "duration", time.Since(started))
		result.Content = fmt.Sprintf("Error: %s", reason)
		return result
	}

	e.logger.Debug("tool succeeded", "tool", call.Name, "duration", time.Since(started))
	result.Content = content
	return result
}
