// Package orchestrator runs the agent execution graph: decide, maybe execute
// tools, decide again, until a direct answer or the hop budget ends the run.
// Each run streams status transitions and answer content to its caller and
// persists the session exactly once, at its terminal point.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmallari/gofer/internal/orchestrator/models"
	"github.com/jmallari/gofer/internal/store"
)

// Orchestrator wires the decision and tool-execution steps into the run
// loop. All dependencies are injected; there is no process-wide state.
type Orchestrator struct {
	decision *DecisionStep
	executor *ToolExecutionStep
	store    store.Store
	maxHops  int
	logger   *slog.Logger

	// leases serializes runs per session id: a run reads the full history
	// and appends to it, which must not interleave with another run on the
	// same session. Distinct sessions run in parallel.
	mu     sync.Mutex
	leases map[string]*sync.Mutex
}

// New creates an Orchestrator. maxHops bounds the number of decide/execute
// steps per run.
func New(decision *DecisionStep, executor *ToolExecutionStep, st store.Store, maxHops int, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		decision: decision,
		executor: executor,
		store:    st,
		maxHops:  maxHops,
		logger:   logger,
		leases:   make(map[string]*sync.Mutex),
	}
}

// Run starts one turn for the session and returns its event stream. The
// turn executes in the background; consume the stream for status, content
// and the terminal outcome. The consumer may Close the stream early, in
// which case the turn still completes and persists.
func (o *Orchestrator) Run(ctx context.Context, sessionID, userText string) *Stream {
	s := newStream()
	go o.run(ctx, sessionID, userText, s)
	return s
}

func (o *Orchestrator) run(ctx context.Context, sessionID, userText string, s *Stream) {
	lease := o.lease(sessionID)
	lease.Lock()
	defer lease.Unlock()

	history, err := o.store.Read(ctx, sessionID)
	if err != nil {
		s.emitError(fmt.Errorf("%w: %v", ErrPersistence, err))
		s.finish()
		return
	}

	userMsg := models.Message{Role: models.RoleUser, Content: userText}
	history = append(history, userMsg)
	produced := []models.Message{userMsg}

	hops := 0
	var runErr error

	for {
		if hops == o.maxHops {
			runErr = ErrRecursionLimit
			break
		}
		hops++

		s.emitStatus(StatusDeciding, "")
		msg := o.decision.Decide(ctx, history)
		history = append(history, msg)
		produced = append(produced, msg)

		if !msg.HasToolCalls() {
			if msg.Content != "" {
				s.emitContent(msg.Content)
			}
			break
		}

		if hops == o.maxHops {
			runErr = ErrRecursionLimit
			break
		}
		hops++

		// Tool-name attribution for the status side channel is
		// best-effort: one transition per request, in request order.
		for _, call := range msg.ToolCalls {
			s.emitStatus(StatusRunningTool, call.Name)
		}
		for _, result := range o.executor.Execute(ctx, msg.ToolCalls) {
			rm := result.Message()
			history = append(history, rm)
			produced = append(produced, rm)
		}
	}

	o.finishRun(ctx, sessionID, produced, s, runErr)
}

// finishRun persists everything the run produced and terminates the stream:
// either Finalizing → Idle, or a single terminal error event. Persistence
// must survive caller cancellation, so the store call detaches from ctx.
func (o *Orchestrator) finishRun(ctx context.Context, sessionID string, produced []models.Message, s *Stream, runErr error) {
	s.emitStatus(StatusFinalizing, "")

	if err := o.store.Append(context.WithoutCancel(ctx), sessionID, produced); err != nil {
		o.logger.Error("persistence failed", "session", sessionID, "error", err)
		s.emitError(fmt.Errorf("%w: %v", ErrPersistence, err))
		s.finish()
		return
	}

	if runErr != nil {
		o.logger.Error("run failed", "session", sessionID, "error", runErr)
		s.emitError(runErr)
		s.finish()
		return
	}

	s.emitStatus(StatusIdle, "")
	s.finish()
}

func (o *Orchestrator) lease(sessionID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()

	m, ok := o.leases[sessionID]
	if !ok {
		m = &sync.Mutex{}
		o.leases[sessionID] = m
	}
	return m
}
