// Package tool provides the agent's capabilities: a registry of named tools
// the decision step can invoke, each declaring an argument schema and an
// execute function. Network access happens entirely inside Execute; the
// registry itself is read-only after construction.
package tool

import (
	"context"
	"sort"

	provider "github.com/jmallari/gofer/internal/provider/models"
)

// Tool represents a capability the agent can use.
// Each tool must be stateless and safe for concurrent use.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Description returns a human-readable description
	Description() string

	// Definition returns the structured tool definition for the provider
	Definition() provider.ToolDefinition

	// Execute runs the tool with the given arguments.
	// Args is a map of argument names to values, as provided by the model.
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Registry maps tool names to implementations. It is immutable after New.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry builds a registry from the given tools. Later duplicates of a
// name silently win; callers are expected to register each tool once.
func NewRegistry(tools ...Tool) *Registry {
	m := make(map[string]Tool, len(tools))
	for _, t := range tools {
		m[t.Name()] = t
	}
	return &Registry{tools: m}
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Definitions returns the provider-facing definitions of all registered
// tools, sorted by name for deterministic output.
func (r *Registry) Definitions() []provider.ToolDefinition {
	defs := make([]provider.ToolDefinition, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.Definition())
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}
