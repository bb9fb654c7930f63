// Package rules implements the text rewriting rules for vertical
// display: tate-chu-yoko wrapping of short digit and punctuation runs,
// fixed glyph orientation for symbol classes, and the masking that
// keeps character references, URLs and email addresses out of reach of
// those rules.
package rules

import (
	"regexp"
	"sort"
	"strings"
)

// Span is one segment of a text run. Protected spans hold substrings
// the rules must never rewrite; literal spans are fair game.
type Span struct {
	Text      string
	Protected bool
}

var (
	// Named or numeric (decimal/hex) character references.
	refPattern = regexp.MustCompile(`&#?[A-Za-z0-9]{2,8};`)

	// Email addresses and URLs.
	linkPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}|https?://\S+`)
)

// Mask splits text into literal and protected spans. Both patterns are
// matched against the full text and their intervals union-merged, so a
// URL keeps protecting across a character reference embedded in its
// path. The email character class excludes the raw &/;/# of a
// reference, so reference-bearing emails come out protected piecewise.
func Mask(text string) []Span {
	matches := refPattern.FindAllStringIndex(text, -1)
	matches = append(matches, linkPattern.FindAllStringIndex(text, -1)...)
	if len(matches) == 0 {
		if text == "" {
			return nil
		}
		return []Span{{Text: text}}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i][0] < matches[j][0] })

	// Merge overlapping intervals, e.g. a reference inside a URL.
	merged := [][]int{matches[0]}
	for _, m := range matches[1:] {
		last := merged[len(merged)-1]
		if m[0] < last[1] {
			if m[1] > last[1] {
				last[1] = m[1]
			}
			continue
		}
		merged = append(merged, m)
	}

	var spans []Span
	end := 0
	for _, m := range merged {
		if m[0] > end {
			spans = append(spans, Span{Text: text[end:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[0]:m[1]], Protected: true})
		end = m[1]
	}
	if end < len(text) {
		spans = append(spans, Span{Text: text[end:]})
	}
	return spans
}

// Join reassembles spans into a single string. Protected content comes
// back verbatim, so Join(Mask(text)) == text as long as no rule has
// rewritten a literal span.
func Join(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
