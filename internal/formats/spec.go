// Package formats holds the editorial format registry: per-format prompt
// references, generation parameters, and the declarative rule sets the
// rewrite pipeline and validator enforce. Pure data; the pipeline never
// writes configuration.
package formats

import "fmt"

// Rules is the declarative constraint set for one editorial format.
type Rules struct {
	// AllowSubheads permits bold standalone headings between body sections.
	AllowSubheads bool `json:"allow_subheads"`
	// IntroMaxSentences caps the sentence count of each intro paragraph.
	IntroMaxSentences int `json:"intro_max_sentences"`
	// IntroParagraphsBeforeSubhead is the number of lead paragraphs expected
	// before the first subhead.
	IntroParagraphsBeforeSubhead int `json:"intro_paragraphs_before_subhead"`
	// MinWords and MaxWords bound the total word count; nil means
	// unconstrained.
	MinWords *int `json:"min_words"`
	MaxWords *int `json:"max_words"`
	// MaxSentencesPerParagraph caps body paragraph length.
	MaxSentencesPerParagraph int `json:"max_sentences_per_paragraph"`
}

// Spec describes one editorial format. Immutable per generation request.
type Spec struct {
	Slug              string  `json:"slug"`
	Name              string  `json:"name"`
	PromptKey         string  `json:"prompt_key"`
	Temperature       float32 `json:"temperature"`
	OutputTokenBudget int32   `json:"output_token_budget"`
	Rules             Rules   `json:"rules"`
}

// Validate checks that a spec is internally consistent.
func (s Spec) Validate() error {
	if s.Slug == "" {
		return fmt.Errorf("format spec: slug is required")
	}
	if s.PromptKey == "" {
		return fmt.Errorf("format %s: prompt_key is required", s.Slug)
	}
	if s.Temperature < 0 || s.Temperature > 2 {
		return fmt.Errorf("format %s: temperature %.2f out of range [0,2]", s.Slug, s.Temperature)
	}
	if s.OutputTokenBudget <= 0 {
		return fmt.Errorf("format %s: output_token_budget must be positive", s.Slug)
	}
	if s.Rules.IntroMaxSentences < 1 {
		return fmt.Errorf("format %s: intro_max_sentences must be at least 1", s.Slug)
	}
	if s.Rules.IntroParagraphsBeforeSubhead < 1 {
		return fmt.Errorf("format %s: intro_paragraphs_before_subhead must be at least 1", s.Slug)
	}
	if s.Rules.MaxSentencesPerParagraph < 1 {
		return fmt.Errorf("format %s: max_sentences_per_paragraph must be at least 1", s.Slug)
	}
	if s.Rules.MinWords != nil && *s.Rules.MinWords < 0 {
		return fmt.Errorf("format %s: min_words must be non-negative", s.Slug)
	}
	if s.Rules.MinWords != nil && s.Rules.MaxWords != nil && *s.Rules.MaxWords < *s.Rules.MinWords {
		return fmt.Errorf("format %s: max_words %d below min_words %d", s.Slug, *s.Rules.MaxWords, *s.Rules.MinWords)
	}
	return nil
}

// intPtr returns a pointer to an integer.
func intPtr(i int) *int {
	return &i
}
