package models

// Role identifies who produced a message. It is an explicit tag rather than
// a free-form string so the orchestrator can match on it exhaustively.
type Role string

const (
	// RoleUser marks messages typed by the caller.
	RoleUser Role = "user"
	// RoleAgent marks messages produced by the decision step, either a
	// direct answer or a tool-call request.
	RoleAgent Role = "agent"
	// RoleTool marks tool-result messages emitted by the executor.
	RoleTool Role = "tool"
	// RoleError marks degraded responses, e.g. the apology emitted when the
	// decision capability faults.
	RoleError Role = "error"
)

// Message is a single entry in a session's conversation history.
type Message struct {
	Role    Role
	Content string

	// ToolCalls is non-empty only on agent messages that request tools.
	ToolCalls []ToolCall

	// ToolCallID back-references the ToolCall that produced this message.
	// Set only when Role == RoleTool.
	ToolCallID string

	// ToolName is the tool that produced a RoleTool message.
	ToolName string
}

// HasToolCalls reports whether the message requests tool execution.
func (m Message) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// ToolCall is a structured tool invocation requested by the decision step.
type ToolCall struct {
	// ID is unique within the requesting message.
	ID   string
	Name string
	Args map[string]any
}

// ToolResult is the outcome of executing a single ToolCall.
type ToolResult struct {
	// ID matches ToolCall.ID.
	ID string
	// Name is the tool that ran.
	Name string
	// Content is the normalized payload. Failures are rendered as
	// "Error: <reason>" so the decision step sees them as plain text.
	Content string
}

// Message converts the result into its tool-result message form.
func (r ToolResult) Message() Message {
	return Message{
		Role:       RoleTool,
		Content:    r.Content,
		ToolCallID: r.ID,
		ToolName:   r.Name,
	}
}

// DisplayRole maps a message role to the two-valued role set used when
// replaying a stored session: user input stays "user", everything else is
// shown as the agent speaking.
func (m Message) DisplayRole() string {
	if m.Role == RoleUser {
		return "user"
	}
	return "agent"
}
