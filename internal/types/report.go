package types

// Validation rule names. Every rule appears in each report so the result is
// exhaustive rather than short-circuiting.
const (
	RuleBoldMarkers    = "bold_markers"
	RuleIntroBold      = "intro_bold"
	RuleSubheads       = "subheads"
	RuleSentenceLimits = "sentence_limits"
	RuleWordCount      = "word_count"
)

// AllRules lists every validation rule in evaluation order.
var AllRules = []string{
	RuleBoldMarkers,
	RuleIntroBold,
	RuleSubheads,
	RuleSentenceLimits,
	RuleWordCount,
}

// ValidationReport records the outcome of checking a rewritten document
// against a format's rule set.
type ValidationReport struct {
	FormatSlug string          `json:"format_slug"`
	WordCount  int             `json:"word_count"`
	Results    map[string]bool `json:"results"`
	Violations []string        `json:"violations,omitempty"`
}

// Passed reports whether the named rule passed. Rules absent from the report
// are treated as passing.
func (r *ValidationReport) Passed(rule string) bool {
	if r == nil || r.Results == nil {
		return true
	}
	passed, ok := r.Results[rule]
	return !ok || passed
}

// AllPassed reports whether every evaluated rule passed.
func (r *ValidationReport) AllPassed() bool {
	if r == nil {
		return true
	}
	for _, passed := range r.Results {
		if !passed {
			return false
		}
	}
	return true
}

// FailedRules returns the names of failed rules in evaluation order.
func (r *ValidationReport) FailedRules() []string {
	if r == nil {
		return nil
	}
	var failed []string
	for _, rule := range AllRules {
		if passed, ok := r.Results[rule]; ok && !passed {
			failed = append(failed, rule)
		}
	}
	return failed
}
