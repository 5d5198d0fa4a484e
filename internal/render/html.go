package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/aylin/article-stylist/internal/types"
)

var markdownConverter = goldmark.New()

// HTML renders a document as an HTML fragment for editorial preview.
// Each paragraph becomes a <p> element; bold spans become <strong>.
func HTML(d types.Document) (string, error) {
	var buf bytes.Buffer
	if err := markdownConverter.Convert([]byte(Markdown(d)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
