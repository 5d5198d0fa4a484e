// Package normalize resolves the layout ambiguity of a raw LLM draft. It is
// the single point where line-break variants collapse to a canonical
// paragraph list; every rewrite pass downstream assumes its output.
package normalize

import (
	"regexp"
	"strings"

	"github.com/aylin/article-stylist/internal/types"
)

var (
	blankLineRe = regexp.MustCompile(`\n{2,}`)
	spaceRunRe  = regexp.MustCompile(`[ \t]+`)
)

// Document converts a raw draft into a canonical paragraph list.
//
// Drafts separated by blank lines are split on blank-line runs with soft
// wraps inside a block collapsed to single spaces. Drafts that use single
// newlines as paragraph separators (common Gemini output) are split per line.
// In both modes, fragments left open by an unterminated bold span are merged
// with the following fragment; the embedded break survives until the intro
// bolding pass removes it.
func Document(raw string) types.Document {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return types.Document{}
	}

	var blocks []string
	if strings.Contains(text, "\n\n") {
		for _, block := range blankLineRe.Split(text, -1) {
			blocks = append(blocks, joinSoftWraps(block))
		}
	} else {
		blocks = strings.Split(text, "\n")
	}

	var texts []string
	for _, block := range blocks {
		block = strings.TrimSpace(spaceRunRe.ReplaceAllString(block, " "))
		if block == "" {
			continue
		}
		texts = append(texts, block)
	}

	return types.NewDocument(mergeOpenBoldSpans(texts))
}

// joinSoftWraps collapses hard-wrapped lines inside one paragraph block to a
// single line, except across a line that leaves a bold span open; that break
// is preserved for the intro bolding pass to repair and report.
func joinSoftWraps(block string) string {
	lines := strings.Split(block, "\n")
	if len(lines) == 1 {
		return block
	}

	var sb strings.Builder
	open := false
	for i, line := range lines {
		if i > 0 {
			if open {
				sb.WriteString("\n")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(strings.TrimSpace(line))
		if strings.Count(line, types.BoldMarker)%2 == 1 {
			open = !open
		}
	}
	return sb.String()
}

// mergeOpenBoldSpans joins adjacent fragments while a fragment carries an odd
// number of bold markers, so a bold span broken across lines stays one
// logical paragraph.
func mergeOpenBoldSpans(texts []string) []string {
	var merged []string
	for _, text := range texts {
		if len(merged) > 0 && strings.Count(merged[len(merged)-1], types.BoldMarker)%2 == 1 {
			merged[len(merged)-1] += "\n" + text
			continue
		}
		merged = append(merged, text)
	}
	return merged
}
