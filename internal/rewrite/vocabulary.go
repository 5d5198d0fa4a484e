package rewrite

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

// spellingFixes maps frequent misspellings in generated Turkish text to the
// orthographically correct form.
var spellingFixes = [][2]string{
	{"herşey", "her şey"},
	{"birşey", "bir şey"},
	{"hiçbirşey", "hiçbir şey"},
	{"herbiri", "her biri"},
	{"hergün", "her gün"},
	{"bir kaç", "birkaç"},
	{"pekçok", "pek çok"},
	{"yanlız", "yalnız"},
	{"yalnış", "yanlış"},
	{"orjinal", "orijinal"},
	{"döküman", "doküman"},
	{"şöför", "şoför"},
}

// verbFixes maps colloquial future-tense contractions back to the standard
// written form.
var verbFixes = [][2]string{
	{"yapıcak", "yapacak"},
	{"olucak", "olacak"},
	{"gelicek", "gelecek"},
	{"gidicek", "gidecek"},
	{"edicek", "edecek"},
	{"alıcak", "alacak"},
	{"vericek", "verecek"},
	{"açılıcak", "açılacak"},
}

// ordinalSuffixRe matches an apostrophe-attached ordinal suffix after a
// numeral ("19'uncu yüzyıl"); house style writes these as "19. yüzyıl".
var ordinalSuffixRe = regexp.MustCompile(`(\d+)'(üncü|uncu|ıncı|inci|ncü|ncu|ncı|nci)\b`)

type wordRule struct {
	re          *regexp.Regexp
	replacement string
}

var vocabularyRules = buildVocabularyRules()

// buildVocabularyRules compiles boundary-aware regexes for each entry plus
// its sentence-initial capitalized variant.
func buildVocabularyRules() []wordRule {
	var rules []wordRule
	add := func(from, to string) {
		re := regexp.MustCompile(`(^|[^\p{L}\p{N}])` + regexp.QuoteMeta(from) + `($|[^\p{L}\p{N}])`)
		rules = append(rules, wordRule{re: re, replacement: "${1}" + to + "${2}"})
	}
	for _, pair := range append(append([][2]string{}, spellingFixes...), verbFixes...) {
		add(pair[0], pair[1])
		add(upperFirstTurkish(pair[0]), upperFirstTurkish(pair[1]))
	}
	return rules
}

// CorrectVocabulary applies pattern-based word substitutions and ordinal
// date-suffix stripping to every paragraph except the headline and byline,
// whose proper nouns stay verbatim.
func CorrectVocabulary(d types.Document, rules formats.Rules) types.Document {
	out := d.Clone()
	for i := range out.Paragraphs {
		p := &out.Paragraphs[i]
		if p.Role == types.RoleHeadline || p.Role == types.RoleByline {
			continue
		}
		text := p.Text
		for _, rule := range vocabularyRules {
			// The boundary group consumes the delimiter, so two occurrences
			// separated by a single space need another application. Each
			// replacement removes a match, so the loop reaches a fixed point.
			for {
				next := rule.re.ReplaceAllString(text, rule.replacement)
				if next == text {
					break
				}
				text = next
			}
		}
		p.Text = ordinalSuffixRe.ReplaceAllString(text, "$1.")
	}
	return out
}

// upperFirstTurkish capitalizes the first rune using Turkish casing rules
// (i → İ, ı → I).
func upperFirstTurkish(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	switch r {
	case 'i':
		return "İ" + s[size:]
	case 'ı':
		return "I" + s[size:]
	default:
		return string(unicode.ToUpper(r)) + s[size:]
	}
}
