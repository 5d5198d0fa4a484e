package rewrite

import (
	"log"
	"slices"
	"strings"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

// EnforceIntroSentences trims each intro paragraph to the format's sentence
// bound, merging overflow sentences forward into the next paragraph. Nothing
// is ever discarded: when no paragraph can absorb the overflow, a new body
// paragraph is inserted.
func EnforceIntroSentences(d types.Document, rules formats.Rules) types.Document {
	maxSentences := rules.IntroMaxSentences
	if maxSentences < 1 {
		return d
	}

	out := d.Clone()
	paras := out.Paragraphs
	for i := 0; i < len(paras); i++ {
		p := paras[i]
		if p.Role != types.RoleIntro && p.Role != types.RoleIntroSecondary {
			continue
		}

		inner := collapseWhitespace(types.UnboldText(p.Text))
		sentences := SplitSentences(inner)
		if len(sentences) <= maxSentences {
			continue
		}

		head := strings.Join(sentences[:maxSentences], " ")
		overflow := strings.Join(sentences[maxSentences:], " ")
		if p.IsBold() {
			paras[i].Text = types.BoldText(head)
		} else {
			paras[i].Text = head
		}

		next := i + 1
		switch {
		case next < len(paras) && paras[next].Role == types.RoleIntroSecondary:
			// The secondary intro absorbs the overflow; its own bound is
			// enforced when the loop reaches it.
			absorbed := overflow + " " + types.UnboldText(paras[next].Text)
			if paras[next].IsBold() {
				paras[next].Text = types.BoldText(collapseWhitespace(absorbed))
			} else {
				paras[next].Text = collapseWhitespace(absorbed)
			}
		case next < len(paras) && paras[next].Role == types.RoleBody && !paras[next].IsBold():
			paras[next].Text = overflow + " " + paras[next].Text
		default:
			paras = slices.Insert(paras, next, types.Paragraph{Text: overflow, Role: types.RoleBody})
		}
	}
	out.Paragraphs = paras
	return out
}

// EnsureIntroBold is the last line of defense for the bold-intro contract:
// every intro paragraph is stripped of stray markers, flattened to one
// logical line, and re-wrapped in a single bold marker pair. A paragraph that
// still fails the bold check afterwards is a pipeline defect and is logged,
// never silently ignored.
func EnsureIntroBold(d types.Document, rules formats.Rules) types.Document {
	out := d.Clone()
	for i := range out.Paragraphs {
		p := &out.Paragraphs[i]
		if p.Role != types.RoleIntro && p.Role != types.RoleIntroSecondary {
			continue
		}

		inner := collapseWhitespace(types.UnboldText(p.Text))
		if inner == "" {
			p.Text = ""
			continue
		}
		p.Text = types.BoldText(inner)
		if !p.IsBold() {
			log.Printf("[defect] intro paragraph %d not bold after rewrite: %q", i, p.Text)
		}
	}
	return out
}
