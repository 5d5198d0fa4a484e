package rewrite

import (
	"strings"
	"unicode"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/types"
)

// ileExceptions lists tokens that, when they follow a standalone "ile", mark
// a construction where the word must stay separate ("ile birlikte" = together
// with). The check is a heuristic; tokens are compared lowercased with
// surrounding punctuation trimmed.
var ileExceptions = map[string]bool{
	"birlikte":            true,
	"beraber":             true,
	"aynı":                true,
	"ilgili":              true,
	"bağlantılı":          true,
	"kıyaslandığında":     true,
	"karşılaştırıldığında": true,
}

const turkishBackVowels = "aıou"
const turkishVowels = "aıoueiöü"

// JoinIleSuffix joins the instrumental "ile" ("with/by") to its preceding
// token as the clitic suffix -la/-le, applying vowel harmony, a "y" buffer
// after vowels, and an apostrophe after proper nouns ("otobüs ile" →
// "otobüsle", "Antalya ile" → "Antalya'yla"). A following token from the
// exception set signals a construction where "ile" is a real conjunction and
// must stay separate. Headline and byline are never touched.
func JoinIleSuffix(d types.Document, rules formats.Rules) types.Document {
	out := d.Clone()
	for i := range out.Paragraphs {
		p := &out.Paragraphs[i]
		if p.Role == types.RoleHeadline || p.Role == types.RoleByline {
			continue
		}
		p.Text = joinIleInText(p.Text)
	}
	return out
}

func joinIleInText(text string) string {
	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}

	var outWords []string
	changed := false
	for i := 0; i < len(words); i++ {
		word := words[i]
		base, trailing := splitTrailingPunctuation(word)
		if base != "ile" || len(outWords) == 0 {
			outWords = append(outWords, word)
			continue
		}

		prev := outWords[len(outWords)-1]
		if !endsWithLetter(prev) {
			outWords = append(outWords, word)
			continue
		}
		if i+1 < len(words) {
			next, _ := splitTrailingPunctuation(words[i+1])
			if ileExceptions[strings.ToLower(stripMarkers(next))] {
				outWords = append(outWords, word)
				continue
			}
		}

		outWords[len(outWords)-1] = attachIle(prev) + trailing
		changed = true
	}

	if !changed {
		return text
	}
	return strings.Join(outWords, " ")
}

// attachIle appends the harmonized -la/-le clitic to word.
func attachIle(word string) string {
	runes := []rune(stripMarkers(word))
	if len(runes) == 0 {
		return word
	}

	suffix := "le"
	for j := len(runes) - 1; j >= 0; j-- {
		lower := unicode.ToLower(runes[j])
		if strings.ContainsRune(turkishVowels, lower) {
			if strings.ContainsRune(turkishBackVowels, lower) {
				suffix = "la"
			}
			break
		}
	}

	last := unicode.ToLower(runes[len(runes)-1])
	if strings.ContainsRune(turkishVowels, last) {
		suffix = "y" + suffix
	}
	if unicode.IsUpper(runes[0]) {
		// Proper nouns take the suffix after an apostrophe.
		return word + "'" + suffix
	}
	return word + suffix
}

// splitTrailingPunctuation separates closing punctuation from a token so
// "ile." still matches and the punctuation survives the join.
func splitTrailingPunctuation(word string) (string, string) {
	trimmed := strings.TrimRightFunc(word, func(r rune) bool {
		return unicode.IsPunct(r) && r != '\''
	})
	return trimmed, word[len(trimmed):]
}

func stripMarkers(word string) string {
	return strings.ReplaceAll(word, types.BoldMarker, "")
}

func endsWithLetter(word string) bool {
	runes := []rune(stripMarkers(word))
	return len(runes) > 0 && unicode.IsLetter(runes[len(runes)-1])
}
