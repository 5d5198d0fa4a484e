// Package types provides type definitions for structured data used throughout the article-stylist system.
package types

import "strings"

// Role classifies a paragraph's editorial function within an article.
type Role string

// Paragraph roles, inferred positionally and from bold markers. The
// generator never labels paragraphs itself.
const (
	RoleHeadline       Role = "headline"
	RoleByline         Role = "byline"
	RoleIntro          Role = "intro"
	RoleIntroSecondary Role = "intro_secondary"
	RoleSubhead        Role = "subhead"
	RoleBody           Role = "body"
)

// BoldMarker is the inline delimiter pair denoting that an entire paragraph
// must render emphasized. A well-formed bold paragraph is wrapped in exactly
// one matching pair with no embedded line break.
const BoldMarker = "**"

// Paragraph is a single block of article text. After normalization the text
// carries no embedded newline except inside an unterminated bold span that a
// later rewrite pass is responsible for repairing.
type Paragraph struct {
	Text string `json:"text"`
	Role Role   `json:"role"`
}

// IsBold reports whether the paragraph is fully wrapped in a single bold
// marker pair.
func (p Paragraph) IsBold() bool {
	return IsBoldText(p.Text)
}

// PlainText returns the paragraph text with all bold markers removed.
func (p Paragraph) PlainText() string {
	return strings.TrimSpace(strings.ReplaceAll(p.Text, BoldMarker, ""))
}

// WordCount returns the number of whitespace-delimited words in the
// paragraph, ignoring bold markers.
func (p Paragraph) WordCount() int {
	return len(strings.Fields(p.PlainText()))
}

// Document is an ordered sequence of paragraphs. Pipeline stages never mutate
// a Document in place; each stage derives a new one.
type Document struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// NewDocument builds an unclassified document from raw paragraph texts.
func NewDocument(texts []string) Document {
	paragraphs := make([]Paragraph, 0, len(texts))
	for _, text := range texts {
		paragraphs = append(paragraphs, Paragraph{Text: text})
	}
	return Document{Paragraphs: paragraphs}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	paragraphs := make([]Paragraph, len(d.Paragraphs))
	copy(paragraphs, d.Paragraphs)
	return Document{Paragraphs: paragraphs}
}

// IsEmpty reports whether the document has no paragraphs.
func (d Document) IsEmpty() bool {
	return len(d.Paragraphs) == 0
}

// WordCount returns the total word count across all paragraphs, bold markers
// excluded.
func (d Document) WordCount() int {
	total := 0
	for _, p := range d.Paragraphs {
		total += p.WordCount()
	}
	return total
}

// Texts returns the paragraph texts in order.
func (d Document) Texts() []string {
	texts := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		texts[i] = p.Text
	}
	return texts
}

// IsBoldText reports whether text is wrapped in exactly one bold marker pair
// with no embedded line break.
func IsBoldText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= 2*len(BoldMarker) {
		return false
	}
	if !strings.HasPrefix(trimmed, BoldMarker) || !strings.HasSuffix(trimmed, BoldMarker) {
		return false
	}
	if strings.Count(trimmed, BoldMarker) != 2 {
		return false
	}
	return !strings.Contains(trimmed, "\n")
}

// BoldText wraps text in a single bold marker pair. Empty input is returned
// unchanged so that empty paragraphs never gain markers.
func BoldText(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	return BoldMarker + text + BoldMarker
}

// UnboldText strips every bold marker from text.
func UnboldText(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, BoldMarker, ""))
}

// Classify re-derives the role of every paragraph from position and bold
// markers and returns a new document. introParagraphs is the number of lead
// paragraphs the format expects before the first subhead; values below one
// are treated as one.
func Classify(d Document, introParagraphs int) Document {
	out := d.Clone()
	if out.IsEmpty() {
		return out
	}
	if introParagraphs < 1 {
		introParagraphs = 1
	}

	introAssigned := 0
	for i := range out.Paragraphs {
		p := &out.Paragraphs[i]
		switch {
		case i == 0:
			p.Role = RoleHeadline
		case i == 1 && looksLikeByline(p.Text):
			p.Role = RoleByline
		case introAssigned < introParagraphs:
			if introAssigned == 0 {
				p.Role = RoleIntro
			} else {
				p.Role = RoleIntroSecondary
			}
			introAssigned++
		case IsBoldText(p.Text):
			p.Role = RoleSubhead
		default:
			p.Role = RoleBody
		}
	}
	return out
}

// bylineMaxWords bounds how long a credit line can plausibly be.
const bylineMaxWords = 8

// looksLikeByline reports whether a second paragraph reads as a credit line
// rather than article prose: short, unbolded, and free of sentence
// punctuation.
func looksLikeByline(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || IsBoldText(trimmed) {
		return false
	}
	if strings.ContainsAny(trimmed, ".!?") {
		return false
	}
	return len(strings.Fields(trimmed)) <= bylineMaxWords
}
