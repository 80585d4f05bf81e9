package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	cfg := &Config{}

	err := cfg.Validate()
	assert.ErrorContains(t, err, "agent.model must not be empty")
	assert.ErrorContains(t, err, "agent.max_hops must be >= 1")
	assert.ErrorContains(t, err, "tools.tool_timeout_seconds must be >= 1")
	assert.ErrorContains(t, err, "tools.http_timeout_seconds must be >= 1")
}

func TestValidate_TemperatureOutOfRange(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Agent.Temperature = 3.0
	assert.ErrorContains(t, cfg.Validate(), "agent.temperature must be between 0 and 2")

	cfg.Agent.Temperature = -0.1
	assert.ErrorContains(t, cfg.Validate(), "agent.temperature must be between 0 and 2")
}

func TestValidate_NegativeTimeouts(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Tools.ToolTimeoutSeconds = -5

	assert.ErrorContains(t, cfg.Validate(), "tools.tool_timeout_seconds must be >= 1")
}
