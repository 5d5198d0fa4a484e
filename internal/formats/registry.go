package formats

import (
	"fmt"
	"sort"
)

// Registry maps format slugs to their specs. A registry is populated once at
// startup (built-ins plus optional admin overrides) and read-only afterwards,
// so concurrent generation requests can share it without locking.
type Registry struct {
	specs map[string]Spec
}

// NewRegistry returns a registry preloaded with the built-in formats.
func NewRegistry() *Registry {
	r := &Registry{specs: make(map[string]Spec)}
	for _, spec := range builtinSpecs() {
		r.specs[spec.Slug] = spec
	}
	return r
}

// Get returns the spec for a slug.
func (r *Registry) Get(slug string) (Spec, error) {
	spec, ok := r.specs[slug]
	if !ok {
		return Spec{}, &UnknownFormatError{Slug: slug}
	}
	return spec, nil
}

// List returns all registered specs sorted by slug.
func (r *Registry) List() []Spec {
	specs := make([]Spec, 0, len(r.specs))
	for _, spec := range r.specs {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Slug < specs[j].Slug })
	return specs
}

// register validates and stores a spec, replacing any built-in with the same
// slug.
func (r *Registry) register(spec Spec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("invalid format spec: %w", err)
	}
	r.specs[spec.Slug] = spec
	return nil
}

// builtinSpecs returns the fixed editorial formats shipped with the product.
func builtinSpecs() []Spec {
	return []Spec{
		{
			Slug:              "hard_news",
			Name:              "Hard News",
			PromptKey:         "hard-news-system",
			Temperature:       0.3,
			OutputTokenBudget: 1024,
			Rules: Rules{
				AllowSubheads:                false,
				IntroMaxSentences:            3,
				IntroParagraphsBeforeSubhead: 1,
				MinWords:                     intPtr(220),
				MaxWords:                     intPtr(400),
				MaxSentencesPerParagraph:     4,
			},
		},
		{
			Slug:              "soft_news",
			Name:              "Soft News",
			PromptKey:         "soft-news-system",
			Temperature:       0.7,
			OutputTokenBudget: 1536,
			Rules: Rules{
				AllowSubheads:                true,
				IntroMaxSentences:            2,
				IntroParagraphsBeforeSubhead: 2,
				MinWords:                     intPtr(260),
				MaxWords:                     intPtr(520),
				MaxSentencesPerParagraph:     5,
			},
		},
		{
			Slug:              "feature",
			Name:              "Feature",
			PromptKey:         "feature-system",
			Temperature:       0.9,
			OutputTokenBudget: 2048,
			Rules: Rules{
				AllowSubheads:                true,
				IntroMaxSentences:            3,
				IntroParagraphsBeforeSubhead: 2,
				MinWords:                     intPtr(420),
				MaxWords:                     intPtr(780),
				MaxSentencesPerParagraph:     6,
			},
		},
		{
			Slug:              "brief",
			Name:              "Brief",
			PromptKey:         "brief-system",
			Temperature:       0.2,
			OutputTokenBudget: 512,
			Rules: Rules{
				AllowSubheads:                false,
				IntroMaxSentences:            2,
				IntroParagraphsBeforeSubhead: 1,
				MinWords:                     nil,
				MaxWords:                     intPtr(140),
				MaxSentencesPerParagraph:     3,
			},
		},
	}
}
