package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
}

func TestWithModel(t *testing.T) {
	cfg := DefaultConfig().WithModel("gemini-2.5-pro")
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	// The original is unchanged.
	assert.Equal(t, "gemini-2.5-flash", DefaultConfig().Model)
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &GenerationError{Message: "draft failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "draft failed")
}
