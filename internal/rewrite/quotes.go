package rewrite

import (
	"regexp"
	"slices"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

// quoteBoundaryRe finds the first point where a quoted sentence ends and
// further sentence text continues in the same paragraph. Both punctuation
// orders are covered: `dedi." Sonra` and `"güzel". Sonra`.
var quoteBoundaryRe = regexp.MustCompile(`(?s)^(.*?(?:[.!?…]["”»]|["”»][.!?…]))\s+(\S.*)$`)

// SplitQuoteBoundaries splits a body paragraph wherever a closing quotation
// mark is immediately followed by additional sentence text: the quoted
// sentences end the first paragraph, the remainder starts a new one. Applied
// repeatedly until no boundary remains, so alternating quote/non-quote runs
// all separate. Headline, byline, and bold paragraphs are never split.
func SplitQuoteBoundaries(d types.Document, rules formats.Rules) types.Document {
	out := d.Clone()
	paras := out.Paragraphs
	for i := 0; i < len(paras); i++ {
		p := paras[i]
		if p.Role != types.RoleBody || p.IsBold() {
			continue
		}
		match := quoteBoundaryRe.FindStringSubmatch(p.Text)
		if match == nil {
			continue
		}
		paras[i].Text = match[1]
		paras = slices.Insert(paras, i+1, types.Paragraph{Text: match[2], Role: types.RoleBody})
		// The inserted remainder is examined on the next iteration, which
		// drives the repeated application to a fixed point.
	}
	out.Paragraphs = paras
	return out
}
