package rewrite

import (
	"regexp"
	"strings"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// StripSubheads converts every bold paragraph that is neither the headline
// nor an intro into plain body text when the format disallows subheads.
// Content is preserved verbatim; only markers and the embedded break of a
// merged span are removed. After this pass no spurious bold paragraph remains
// except headline, intro, and allowed subheads.
func StripSubheads(d types.Document, rules formats.Rules) types.Document {
	if rules.AllowSubheads {
		return d
	}

	out := d.Clone()
	for i := range out.Paragraphs {
		p := &out.Paragraphs[i]
		if p.Role != types.RoleSubhead {
			continue
		}
		p.Text = collapseWhitespace(types.UnboldText(p.Text))
		p.Role = types.RoleBody
	}
	return out
}

// collapseWhitespace flattens internal line breaks and run-on whitespace to
// single spaces.
func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRunRe.ReplaceAllString(text, " "))
}
