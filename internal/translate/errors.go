package translate

import "fmt"

// TranslationError wraps provider failures during source translation.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("translation error: %s", e.Message)
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}
