// Package rewrite repairs common structural mistakes in generated drafts. It
// is an ordered pipeline of pure, idempotent Document transforms; order
// matters because later passes assume invariants established by earlier ones.
package rewrite

import (
	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

// Pass is one format-aware rewrite transform. A pass must be a no-op on input
// that already satisfies its own postcondition and must tolerate empty
// paragraphs.
type Pass struct {
	Name  string
	Apply func(types.Document, formats.Rules) types.Document
}

// Pipeline returns the rewrite passes in their fixed order. The final entry
// re-runs the intro bolding check because the quote and length passes can
// move text across paragraph boundaries.
func Pipeline() []Pass {
	return []Pass{
		{Name: "strip_subheads", Apply: StripSubheads},
		{Name: "intro_sentence_limit", Apply: EnforceIntroSentences},
		{Name: "intro_bold", Apply: EnsureIntroBold},
		{Name: "vocabulary", Apply: CorrectVocabulary},
		{Name: "join_ile", Apply: JoinIleSuffix},
		{Name: "loanwords", Apply: ReplaceLoanwords},
		{Name: "split_quotes", Apply: SplitQuoteBoundaries},
		{Name: "paragraph_length", Apply: EnforceParagraphLength},
		{Name: "intro_bold_recheck", Apply: EnsureIntroBold},
	}
}

// Apply runs the full pipeline against a normalized document and returns the
// repaired copy. Roles are re-derived before every pass because passes can
// add, remove, or reorder paragraphs.
func Apply(d types.Document, spec formats.Spec) (types.Document, error) {
	if d.IsEmpty() {
		return d, &EmptyDocumentError{FormatSlug: spec.Slug}
	}

	out := d.Clone()
	for _, pass := range Pipeline() {
		out = types.Classify(out, spec.Rules.IntroParagraphsBeforeSubhead)
		out = pass.Apply(out, spec.Rules)
	}
	return types.Classify(out, spec.Rules.IntroParagraphsBeforeSubhead), nil
}
