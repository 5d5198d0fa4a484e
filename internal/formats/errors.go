package formats

import "fmt"

// UnknownFormatError indicates a request referenced a slug that is not
// registered.
type UnknownFormatError struct {
	Slug string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format: %s", e.Slug)
}

// PackError indicates a format-pack file could not be loaded or failed schema
// validation.
type PackError struct {
	Path    string
	Message string
	Cause   error
}

func (e *PackError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("format pack %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("format pack %s: %s", e.Path, e.Message)
}

func (e *PackError) Unwrap() error {
	return e.Cause
}
