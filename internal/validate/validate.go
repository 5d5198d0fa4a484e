// Package validate re-parses a rewritten document and checks it against a
// format's rule set. Every rule is evaluated independently so the report is
// exhaustive: a failure in one rule never hides the state of another. The
// document is never mutated.
package validate

import (
	"fmt"
	"strings"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/rewrite"
	"github.com/aylin/article-stylist/internal/types"
)

// ruleCheck evaluates one rule and returns its verdict plus human-readable
// violation messages.
type ruleCheck func(types.Document, formats.Rules) (bool, []string)

// checks maps each rule name to its evaluator.
var checks = map[string]ruleCheck{
	types.RuleBoldMarkers:    checkBoldMarkers,
	types.RuleIntroBold:      checkIntroBold,
	types.RuleSubheads:       checkSubheads,
	types.RuleSentenceLimits: checkSentenceLimits,
	types.RuleWordCount:      checkWordCount,
}

// Check derives paragraph roles afresh and evaluates every rule of the
// format, producing a complete ValidationReport.
func Check(d types.Document, spec formats.Spec) *types.ValidationReport {
	classified := types.Classify(d, spec.Rules.IntroParagraphsBeforeSubhead)

	report := &types.ValidationReport{
		FormatSlug: spec.Slug,
		WordCount:  classified.WordCount(),
		Results:    make(map[string]bool, len(types.AllRules)),
	}
	for _, rule := range types.AllRules {
		passed, violations := checks[rule](classified, spec.Rules)
		report.Results[rule] = passed
		report.Violations = append(report.Violations, violations...)
	}
	return report
}

// checkBoldMarkers verifies bold-marker well-formedness: any paragraph
// carrying markers must be wrapped in exactly one pair with no embedded line
// break.
func checkBoldMarkers(d types.Document, rules formats.Rules) (bool, []string) {
	var violations []string
	for i, p := range d.Paragraphs {
		if !strings.Contains(p.Text, types.BoldMarker) {
			continue
		}
		if !types.IsBoldText(p.Text) {
			violations = append(violations, fmt.Sprintf("paragraph %d carries malformed bold markers", i+1))
		}
	}
	return len(violations) == 0, violations
}

// checkIntroBold verifies that every intro paragraph is fully wrapped in a
// single bold pair and contains no line break.
func checkIntroBold(d types.Document, rules formats.Rules) (bool, []string) {
	var violations []string
	for i, p := range d.Paragraphs {
		if p.Role != types.RoleIntro && p.Role != types.RoleIntroSecondary {
			continue
		}
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		if !p.IsBold() {
			violations = append(violations, fmt.Sprintf("intro paragraph %d is not a single bold span", i+1))
		}
	}
	return len(violations) == 0, violations
}

// checkSubheads verifies the subhead policy: none at all when the format
// forbids them, and when allowed, exactly the configured number of lead
// paragraphs before the first subhead.
func checkSubheads(d types.Document, rules formats.Rules) (bool, []string) {
	var violations []string
	firstSubhead := -1
	leads := 0
	for i, p := range d.Paragraphs {
		if p.Role == types.RoleSubhead {
			if firstSubhead == -1 {
				firstSubhead = i
			}
			if !rules.AllowSubheads {
				violations = append(violations, fmt.Sprintf("paragraph %d is a subhead but the format forbids them", i+1))
			}
			continue
		}
		if firstSubhead == -1 && p.Role != types.RoleHeadline && p.Role != types.RoleByline {
			leads++
		}
	}
	if rules.AllowSubheads && firstSubhead != -1 && leads != rules.IntroParagraphsBeforeSubhead {
		violations = append(violations, fmt.Sprintf(
			"%d paragraphs before first subhead, format expects %d", leads, rules.IntroParagraphsBeforeSubhead))
	}
	return len(violations) == 0, violations
}

// checkSentenceLimits verifies the per-paragraph sentence ceilings for intro
// and body paragraphs.
func checkSentenceLimits(d types.Document, rules formats.Rules) (bool, []string) {
	var violations []string
	for i, p := range d.Paragraphs {
		count := rewrite.CountSentences(p.PlainText())
		switch p.Role {
		case types.RoleIntro, types.RoleIntroSecondary:
			if rules.IntroMaxSentences > 0 && count > rules.IntroMaxSentences {
				violations = append(violations, fmt.Sprintf(
					"intro paragraph %d has %d sentences, maximum is %d", i+1, count, rules.IntroMaxSentences))
			}
		case types.RoleBody:
			if rules.MaxSentencesPerParagraph > 0 && count > rules.MaxSentencesPerParagraph {
				violations = append(violations, fmt.Sprintf(
					"paragraph %d has %d sentences, maximum is %d", i+1, count, rules.MaxSentencesPerParagraph))
			}
		}
	}
	return len(violations) == 0, violations
}

// checkWordCount verifies the total word count against [min_words,
// max_words]; a nil bound is unconstrained.
func checkWordCount(d types.Document, rules formats.Rules) (bool, []string) {
	words := d.WordCount()
	var violations []string
	if rules.MinWords != nil && words < *rules.MinWords {
		violations = append(violations, fmt.Sprintf("%d words, minimum is %d", words, *rules.MinWords))
	}
	if rules.MaxWords != nil && words > *rules.MaxWords {
		violations = append(violations, fmt.Sprintf("%d words, maximum is %d", words, *rules.MaxWords))
	}
	return len(violations) == 0, violations
}
