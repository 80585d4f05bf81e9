package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Agent.Model == "" {
		errs = append(errs, "agent.model must not be empty")
	}
	if c.Agent.MaxHops < 1 {
		errs = append(errs, "agent.max_hops must be >= 1")
	}
	if c.Agent.Temperature < 0 || c.Agent.Temperature > 2 {
		errs = append(errs, "agent.temperature must be between 0 and 2")
	}

	if c.Tools.ToolTimeoutSeconds < 1 {
		errs = append(errs, "tools.tool_timeout_seconds must be >= 1")
	}
	if c.Tools.HTTPTimeoutSeconds < 1 {
		errs = append(errs, "tools.http_timeout_seconds must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
