// Package llm provides centralized LLM configuration and client abstractions
// for article drafting.
package llm

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future).
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// WithModel returns a new Config with a different model.
func (c *Config) WithModel(model string) *Config {
	return &Config{
		Provider: c.Provider,
		Model:    model,
	}
}

// GenerationOptions carries the per-request generation parameters taken from
// a format spec. The client applies them verbatim; it never overrides a
// format's creativity level or output budget.
type GenerationOptions struct {
	Temperature     float32
	MaxOutputTokens int32
}
