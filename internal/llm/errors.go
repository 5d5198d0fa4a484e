package llm

import "fmt"

// GenerationError represents a failed or unusable LLM generation: a provider
// error, a timeout, or empty output. The caller must not retry transparently;
// retry policy belongs to the regeneration controller alone.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
