package rewrite

import (
	"strings"
	"unicode"
)

// turkishAbbreviations are tokens whose trailing period does not end a
// sentence.
var turkishAbbreviations = map[string]bool{
	"Dr":   true,
	"Doç":  true,
	"Prof": true,
	"Av":   true,
	"Sn":   true,
	"No":   true,
	"vb":   true,
	"vs":   true,
	"örn":  true,
	"yy":   true,
	"T.C":  true,
}

// closingPunctuation may trail a sentence terminator and still belong to the
// sentence (closing quotes and brackets).
const closingPunctuation = "\"”»'’)]"

// SplitSentences segments text into sentences on terminal punctuation,
// keeping trailing closing quotes with the sentence they end. Abbreviations,
// single initials, and ordinal numerals do not end a sentence. Bold markers
// are treated as opaque text. Empty input yields nil.
func SplitSentences(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	runes := []rune(trimmed)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		// Swallow a run of terminators (ellipses, "?!").
		end := i
		for end+1 < len(runes) && isTerminator(runes[end+1]) {
			end++
		}
		// Keep closing quotes/brackets with the sentence.
		for end+1 < len(runes) && strings.ContainsRune(closingPunctuation, runes[end+1]) {
			end++
		}

		if end+1 >= len(runes) {
			i = end
			continue // terminal punctuation at end of text; flushed below
		}
		if !unicode.IsSpace(runes[end+1]) {
			i = end
			continue // mid-token punctuation such as "3.5" or a URL
		}
		if runes[i] == '.' && isNonTerminalPeriod(runes, start, i, end) {
			i = end
			continue
		}

		sentence := strings.TrimSpace(string(runes[start : end+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		i = end
		start = end + 1
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// CountSentences returns the number of sentences in text.
func CountSentences(text string) int {
	return len(SplitSentences(text))
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

// isNonTerminalPeriod reports whether the period at index i ends an
// abbreviation, an initial, or an ordinal numeral rather than a sentence.
func isNonTerminalPeriod(runes []rune, start, i, end int) bool {
	// Word immediately preceding the period.
	w := i
	for w > start && !unicode.IsSpace(runes[w-1]) {
		w--
	}
	word := strings.Trim(string(runes[w:i]), "*\"”«»'’([")
	if word == "" {
		return false
	}
	if turkishAbbreviations[word] {
		return true
	}
	// Single capital initial, as in "A. Yılmaz".
	wordRunes := []rune(word)
	if len(wordRunes) == 1 && unicode.IsUpper(wordRunes[0]) {
		return true
	}
	// Ordinal numeral ("19. yüzyıl"), only when the next word is lowercase.
	if isDigits(word) {
		n := end + 1
		for n < len(runes) && unicode.IsSpace(runes[n]) {
			n++
		}
		return n < len(runes) && unicode.IsLower(runes[n])
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
