package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Agent AgentConfig `json:"agent"`
	Tools ToolsConfig `json:"tools"`
	Store StoreConfig `json:"store"`
}

// AgentConfig tunes the run loop and the decision model.
type AgentConfig struct {
	// Model is the Gemini model used for the general decision path.
	Model string `json:"model"` // Default: "gemini-2.0-flash"

	// Temperature is the sampling temperature for decision requests.
	Temperature float64 `json:"temperature"` // Default: 0.7

	// MaxHops bounds decide/execute steps per run; exceeding it fails the
	// run with a recursion-limit error.
	MaxHops int `json:"max_hops"` // Default: 25
}

// ToolsConfig tunes tool execution.
type ToolsConfig struct {
	// ToolTimeoutSeconds bounds a single tool call.
	ToolTimeoutSeconds int `json:"tool_timeout_seconds"` // Default: 30

	// HTTPTimeoutSeconds is the shared HTTP client timeout for tools that
	// call third-party APIs.
	HTTPTimeoutSeconds int `json:"http_timeout_seconds"` // Default: 20
}

// StoreConfig locates the session database.
type StoreConfig struct {
	// DatabasePath is the SQLite file holding session history. Empty means
	// ~/.local/share/gofer/sessions.db.
	DatabasePath string `json:"database_path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Model:       "gemini-2.0-flash",
			Temperature: 0.7,
			MaxHops:     25,
		},
		Tools: ToolsConfig{
			ToolTimeoutSeconds: 30,
			HTTPTimeoutSeconds: 20,
		},
	}
}
