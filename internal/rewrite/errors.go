package rewrite

import "fmt"

// EmptyDocumentError indicates the normalizer produced no paragraphs: there
// is nothing to repair, so the attempt is unusable.
type EmptyDocumentError struct {
	FormatSlug string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("rewrite error: empty document for format %s", e.FormatSlug)
}
