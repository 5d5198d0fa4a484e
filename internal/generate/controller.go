package generate

import (
	"context"
	"log"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/llm"
	"github.com/aylin/article-stylist/internal/normalize"
	"github.com/aylin/article-stylist/internal/render"
	"github.com/aylin/article-stylist/internal/rewrite"
	"github.com/aylin/article-stylist/internal/types"
	"github.com/aylin/article-stylist/internal/validate"
)

// State names the phases of the regeneration state machine.
type State string

// DRAFTING → REWRITING → VALIDATING → {ACCEPTED | REGENERATE | EXHAUSTED}.
const (
	StateDrafting   State = "DRAFTING"
	StateRewriting  State = "REWRITING"
	StateValidating State = "VALIDATING"
	StateAccepted   State = "ACCEPTED"
	StateRegenerate State = "REGENERATE"
	StateExhausted  State = "EXHAUSTED"
)

// DefaultMaxAttempts allows two extra generations beyond the first.
const DefaultMaxAttempts = 3

// Request is one generation job: one format, one source text. The content ID
// is used for logging only.
type Request struct {
	Spec       formats.Spec
	SourceText string
	ContentID  string
}

// Result is the finalized outcome of a generation request. BelowMinimum is
// set when the controller exhausted its attempts under the format's minimum
// word count; the document is still usable and the caller decides how to
// surface the warning.
type Result struct {
	Document     types.Document
	Report       *types.ValidationReport
	Text         string
	Attempts     int
	State        State
	BelowMinimum bool
}

// Controller runs the bounded draft/rewrite/validate loop. It is stateless
// across requests; concurrent requests may share one Controller.
type Controller struct {
	gen         DraftGenerator
	maxAttempts int
}

// NewController creates a controller. maxAttempts below one falls back to
// DefaultMaxAttempts.
func NewController(gen DraftGenerator, maxAttempts int) *Controller {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Controller{gen: gen, maxAttempts: maxAttempts}
}

// Run executes the state machine for one request. Only the minimum word
// count drives regeneration: the rewrite pipeline is expected to guarantee
// every structural rule deterministically, so any other failed rule is
// logged as a pipeline defect and never burns an attempt. When all attempts
// stay under the minimum, the attempt with the highest word count is
// finalized: a short article is still a usable article.
func (c *Controller) Run(ctx context.Context, req Request) (*Result, error) {
	var (
		best     *types.GenerationAttempt
		lastErr  error
		raw      string
		current  *types.GenerationAttempt
		attempts int
	)

	state := StateDrafting
	for {
		switch state {
		case StateDrafting:
			attempts++
			draft, err := c.gen.GenerateDraft(ctx, req.Spec, req.SourceText)
			if err != nil {
				log.Printf("generate: content=%s format=%s attempt=%d draft failed: %v",
					req.ContentID, req.Spec.Slug, attempts, err)
				lastErr = err
				state = StateRegenerate
				continue
			}
			raw = draft
			state = StateRewriting

		case StateRewriting:
			doc := normalize.Document(raw)
			rewritten, err := rewrite.Apply(doc, req.Spec)
			if err != nil {
				// An empty document means the draft was unusable, not that
				// the pipeline is broken; it costs the attempt like a
				// provider error.
				log.Printf("generate: content=%s format=%s attempt=%d unusable draft: %v",
					req.ContentID, req.Spec.Slug, attempts, err)
				lastErr = &llm.GenerationError{Message: "unusable draft", Cause: err}
				state = StateRegenerate
				continue
			}
			current = &types.GenerationAttempt{Number: attempts, RawDraft: raw, Document: rewritten}
			state = StateValidating

		case StateValidating:
			current.Report = validate.Check(current.Document, req.Spec)
			c.logDefects(req, attempts, current.Report)

			if meetsMinimum(current.Report, req.Spec.Rules) {
				return c.finalize(current, attempts, StateAccepted), nil
			}
			log.Printf("generate: content=%s format=%s attempt=%d below minimum (%d words)",
				req.ContentID, req.Spec.Slug, attempts, current.Report.WordCount)
			if best == nil || current.WordCount() > best.WordCount() {
				best = current
			}
			state = StateRegenerate

		case StateRegenerate:
			if attempts >= c.maxAttempts {
				state = StateExhausted
				continue
			}
			state = StateDrafting

		case StateExhausted:
			if best == nil {
				if lastErr != nil {
					return nil, lastErr
				}
				return nil, &llm.GenerationError{Message: "no usable attempt"}
			}
			result := c.finalize(best, attempts, StateExhausted)
			result.BelowMinimum = true
			return result, nil
		}
	}
}

// finalize serializes an attempt into the caller-facing result.
func (c *Controller) finalize(attempt *types.GenerationAttempt, attempts int, state State) *Result {
	return &Result{
		Document: attempt.Document,
		Report:   attempt.Report,
		Text:     render.Markdown(attempt.Document),
		Attempts: attempts,
		State:    state,
	}
}

// logDefects reports structural rules the rewrite pipeline should have
// guaranteed. These indicate a pipeline defect, not a generation defect, and
// never trigger regeneration.
func (c *Controller) logDefects(req Request, attempt int, report *types.ValidationReport) {
	for _, rule := range report.FailedRules() {
		if rule == types.RuleWordCount {
			continue
		}
		log.Printf("[defect] generate: content=%s format=%s attempt=%d rule %s failed after rewrite",
			req.ContentID, req.Spec.Slug, attempt, rule)
	}
}

// meetsMinimum reports whether the attempt satisfies the format's minimum
// word count. Formats without a minimum always pass; overshooting a maximum
// is logged via the report but never regenerated.
func meetsMinimum(report *types.ValidationReport, rules formats.Rules) bool {
	if rules.MinWords == nil {
		return true
	}
	return report.WordCount >= *rules.MinWords
}
