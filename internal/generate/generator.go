// Package generate orchestrates one content generation request: draft,
// normalize, rewrite, validate, and the bounded regeneration loop that turns
// a nondeterministic draft into a document honoring the format contract.
package generate

import (
	"context"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/llm"
	"github.com/aylin/article-stylist/internal/prompts"
)

// DraftGenerator issues one generation request to the LLM provider and
// returns raw draft text. It is an I/O boundary: nondeterministic, slow, and
// fallible. Implementations must not retry internally; the regeneration
// controller owns the only retry loop.
type DraftGenerator interface {
	GenerateDraft(ctx context.Context, spec formats.Spec, sourceText string) (string, error)
}

// LLMDraftGenerator drafts articles through an llm.Client using the format's
// prompt template and generation parameters.
type LLMDraftGenerator struct {
	client llm.Client
}

// NewLLMDraftGenerator wraps an LLM client as a DraftGenerator.
func NewLLMDraftGenerator(client llm.Client) *LLMDraftGenerator {
	return &LLMDraftGenerator{client: client}
}

// GenerateDraft builds the format prompt around the source text and runs one
// generation call.
func (g *LLMDraftGenerator) GenerateDraft(ctx context.Context, spec formats.Spec, sourceText string) (string, error) {
	prompt, err := prompts.Get(spec.PromptKey)
	if err != nil {
		return "", &llm.GenerationError{Message: "missing prompt template", Cause: err}
	}
	rendered := prompts.Format(prompt, map[string]string{"SourceText": sourceText})

	return g.client.GenerateArticle(ctx, rendered, llm.GenerationOptions{
		Temperature:     spec.Temperature,
		MaxOutputTokens: spec.OutputTokenBudget,
	})
}
