package rewrite

import (
	"slices"
	"strings"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

// EnforceParagraphLength splits any body paragraph exceeding the format's
// sentence ceiling into consecutive paragraphs of at most that many
// sentences. Sentence order is preserved and nothing is truncated.
func EnforceParagraphLength(d types.Document, rules formats.Rules) types.Document {
	maxSentences := rules.MaxSentencesPerParagraph
	if maxSentences < 1 {
		return d
	}

	out := d.Clone()
	paras := out.Paragraphs
	for i := 0; i < len(paras); i++ {
		p := paras[i]
		if p.Role != types.RoleBody || p.IsBold() {
			continue
		}
		sentences := SplitSentences(p.Text)
		if len(sentences) <= maxSentences {
			continue
		}

		paras[i].Text = strings.Join(sentences[:maxSentences], " ")
		rest := strings.Join(sentences[maxSentences:], " ")
		paras = slices.Insert(paras, i+1, types.Paragraph{Text: rest, Role: types.RoleBody})
		// The remainder paragraph is re-checked on the next iteration.
	}
	out.Paragraphs = paras
	return out
}
