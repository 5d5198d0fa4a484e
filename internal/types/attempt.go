package types

// GenerationAttempt is the ephemeral record of one draft → rewrite → validate
// cycle. The regeneration controller keeps at most the current and
// best-so-far attempt in memory; persistence is a collaborator's concern.
type GenerationAttempt struct {
	Number   int
	RawDraft string
	Document Document
	Report   *ValidationReport
}

// WordCount returns the word count recorded by the attempt's report.
func (a *GenerationAttempt) WordCount() int {
	if a == nil || a.Report == nil {
		return 0
	}
	return a.Report.WordCount
}
