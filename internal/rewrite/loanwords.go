package rewrite

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

// loanwords maps English words that survive translation untranslated to
// their Turkish equivalents. Keys are lowercase; matching is token-based and
// boundary-aware.
var loanwords = map[string]string{
	"hotel":     "otel",
	"hostel":    "pansiyon",
	"airport":   "havalimanı",
	"beach":     "plaj",
	"museum":    "müze",
	"ticket":    "bilet",
	"tour":      "tur",
	"guide":     "rehber",
	"island":    "ada",
	"breakfast": "kahvaltı",
	"discount":  "indirim",
	"booking":   "rezervasyon",
	"resort":    "tatil köyü",
	"luggage":   "bagaj",
}

var turkishTitle = cases.Title(language.Turkish)

// ReplaceLoanwords substitutes untranslated loanwords with their Turkish
// equivalents, preserving capitalization with Turkish casing rules. The
// headline and byline are skipped, as is any capitalized token that is not
// sentence-initial; those are treated as proper nouns and left verbatim.
func ReplaceLoanwords(d types.Document, rules formats.Rules) types.Document {
	out := d.Clone()
	for i := range out.Paragraphs {
		p := &out.Paragraphs[i]
		if p.Role == types.RoleHeadline || p.Role == types.RoleByline {
			continue
		}
		p.Text = replaceLoanwordsInText(p.Text)
	}
	return out
}

func replaceLoanwordsInText(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	changed := false
	sentenceStart := true
	for i, word := range words {
		core, leading, trailing := splitPunctuation(word)
		atStart := sentenceStart
		sentenceStart = endsSentence(trailing)
		if core == "" {
			continue
		}

		capitalized := startsUpper(core)
		if capitalized && !atStart {
			// Mid-sentence capitalization marks a proper noun.
			continue
		}

		replacement, ok := loanwords[strings.ToLower(core)]
		if !ok {
			continue
		}
		if capitalized {
			replacement = turkishTitle.String(replacement)
		}
		words[i] = leading + replacement + trailing
		changed = true
	}

	if !changed {
		return text
	}
	return strings.Join(words, " ")
}

// splitPunctuation separates a token into leading punctuation (including bold
// markers and opening quotes), the word core, and trailing punctuation.
func splitPunctuation(word string) (core, leading, trailing string) {
	isEdge := func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}
	start := strings.TrimLeftFunc(word, isEdge)
	leading = word[:len(word)-len(start)]
	core = strings.TrimRightFunc(start, isEdge)
	trailing = start[len(core):]
	return core, leading, trailing
}

// endsSentence reports whether trailing punctuation terminates a sentence.
func endsSentence(trailing string) bool {
	return strings.ContainsAny(trailing, ".!?…:")
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}
