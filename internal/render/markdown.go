// Package render turns finished documents back into delivery formats.
// Markdown is the canonical output; HTML is a convenience preview built
// on top of it.
package render

import (
	"strings"

	"github.com/aylin/article-stylist/internal/types"
)

// Markdown serializes a document as Markdown text: one paragraph per
// block, blocks separated by a single blank line. Bold markers are kept
// as-is since they are already valid Markdown emphasis.
func Markdown(d types.Document) string {
	return strings.Join(d.Texts(), "\n\n")
}
