package orchestrator

import "sync"

// Status is the transient run state exposed to the caller. It is never
// persisted; it exists only for the duration of a run.
type Status string

const (
	StatusIdle        Status = "idle"
	StatusDeciding    Status = "deciding"
	StatusRunningTool Status = "running_tool"
	StatusFinalizing  Status = "finalizing"
)

// EventKind discriminates stream events.
type EventKind string

const (
	// EventStatus reports a status transition. Tool carries the active
	// tool name while the status is StatusRunningTool.
	EventStatus EventKind = "status"
	// EventContent carries a fragment of the agent's direct answer.
	EventContent EventKind = "content"
	// EventError is terminal: the run failed and no further events follow.
	EventError EventKind = "error"
)

// Event is a single entry in a run's event stream.
type Event struct {
	Kind    EventKind
	Status  Status
	Tool    string
	Content string
	Err     error
}

// eventBuffer bounds the stream channel. A consumer that stops reading
// without closing the stream applies backpressure after this many events.
const eventBuffer = 64

// Stream delivers a run's events to exactly one consumer. The producer side
// completes the run (including persistence) even if the consumer closes the
// stream early; events emitted after Close are dropped.
type Stream struct {
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

func newStream() *Stream {
	return &Stream{
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}
}

// Events returns the channel to consume. It is closed when the run ends.
func (s *Stream) Events() <-chan Event {
	return s.events
}

// Close abandons consumption. The running turn still completes and persists;
// only delivery stops.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// emit delivers an event unless the consumer has closed the stream.
func (s *Stream) emit(e Event) bool {
	select {
	case <-s.done:
		return false
	case s.events <- e:
		return true
	}
}

func (s *Stream) emitStatus(status Status, tool string) {
	s.emit(Event{Kind: EventStatus, Status: status, Tool: tool})
}

func (s *Stream) emitContent(content string) {
	s.emit(Event{Kind: EventContent, Content: content})
}

func (s *Stream) emitError(err error) {
	s.emit(Event{Kind: EventError, Err: err})
}

// finish marks the end of the run for the consumer.
func (s *Stream) finish() {
	close(s.events)
}
