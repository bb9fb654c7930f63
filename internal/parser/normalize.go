package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var retainedControls = map[rune]bool{
	'\t': true,
	'\n': true,
	'\r': true,
	'\f': true,
}

// cleanText prepares extracted plain text for display HTML: control
// characters are stripped and the result is NFKC-normalized, which
// also folds full-width ASCII to half-width so digit runs become
// eligible for tate-chu-yoko. Never applied to HTML input, where it
// would corrupt markup and character references.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !unicode.IsControl(r) || retainedControls[r] {
			b.WriteRune(r)
		}
	}
	return norm.NFKC.String(b.String())
}
