// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/generate"
	"github.com/aylin/article-stylist/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFormatSpec outputs a human-readable summary of the selected format.
func (p *Printer) PrintFormatSpec(spec *formats.Spec) {
	if spec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format:      %s (%s)\n", spec.Name, spec.Slug))
	sb.WriteString(fmt.Sprintf("Temperature: %.1f\n", spec.Temperature))
	sb.WriteString("\n")

	r := spec.Rules
	sb.WriteString(fmt.Sprintf("Subheads:       %s\n", yesNo(r.AllowSubheads)))
	sb.WriteString(fmt.Sprintf("Intro limit:    %d sentences\n", r.IntroMaxSentences))
	if r.AllowSubheads {
		sb.WriteString(fmt.Sprintf("Intro paras:    %d before first subhead\n", r.IntroParagraphsBeforeSubhead))
	}
	sb.WriteString(fmt.Sprintf("Word count:     %s\n", boundsLabel(r.MinWords, r.MaxWords)))
	sb.WriteString(fmt.Sprintf("Para limit:     %d sentences", r.MaxSentencesPerParagraph))

	p.printBox("FORMAT RULES", sb.String())
}

// PrintReport outputs the per-rule validation results for an attempt.
func (p *Printer) PrintReport(report *types.ValidationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Word count: %d\n\n", report.WordCount))
	for _, rule := range types.AllRules {
		passed, ok := report.Results[rule]
		if !ok {
			continue
		}
		mark := "✓"
		if !passed {
			mark = "✗"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, rule))
	}
	for _, v := range report.Violations {
		sb.WriteString(fmt.Sprintf("\n%s", v))
	}

	p.printBox("VALIDATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutcome outputs the final result of a generation run.
func (p *Printer) PrintOutcome(result *generate.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("State:      %s\n", result.State))
	sb.WriteString(fmt.Sprintf("Attempts:   %d\n", result.Attempts))
	sb.WriteString(fmt.Sprintf("Words:      %d", result.Report.WordCount))
	if result.BelowMinimum {
		sb.WriteString("\n\nDelivered best attempt below the word minimum.")
	}

	p.printBox("GENERATION OUTCOME", sb.String())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func boundsLabel(minWords, maxWords *int) string {
	switch {
	case minWords != nil && maxWords != nil:
		return fmt.Sprintf("%d–%d words", *minWords, *maxWords)
	case minWords != nil:
		return fmt.Sprintf("at least %d words", *minWords)
	case maxWords != nil:
		return fmt.Sprintf("at most %d words", *maxWords)
	default:
		return "unconstrained"
	}
}
