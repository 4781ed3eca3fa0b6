package config

import "time"

// LLMConfig selects the model used for all generation steps: the clearing
// feature pass, the criteria planner, the responder, the polisher, and the
// market-rate search. Per-step timeouts live with their callers.
type LLMConfig struct {
	// Model is the model identifier sent to the API.
	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`

	// BaseURL overrides the API endpoint (proxies, test servers).
	BaseURL string `yaml:"base_url"`

	// MaxTokens bounds each completion.
	MaxTokens int `yaml:"max_tokens"`

	// Temperature for generation steps. Scoring steps always run at 0.
	Temperature float64 `yaml:"temperature"`

	// RequestTimeout is the hard ceiling per API call; callers may set
	// shorter per-step deadlines.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:          "claude-sonnet-4-5",
		APIKeyEnv:      "ANTHROPIC_API_KEY",
		MaxTokens:      1024,
		Temperature:    0.3,
		RequestTimeout: 90 * time.Second,
	}
}
