package rules

import (
	"strings"
	"unicode"
)

const (
	sidewaysOpen = `<span class="sideways">`
	uprightOpen  = `<span class="upright">`
)

// Symbols whose glyphs must lie sideways in vertical flow.
var sidewaysChars = map[rune]bool{
	'÷': true, '∴': true, '≠': true, '≦': true, '≧': true,
	'∧': true, '∨': true, '＜': true, '＞': true, '‐': true, '－': true,
}

// The Greek and Cyrillic blocks (U+0370–03FF, U+0400–04FF). Blocks,
// not scripts: script Greek would pull in Coptic and the extended
// ranges.
var uprightBlocks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0370, Hi: 0x03ff, Stride: 1},
		{Lo: 0x0400, Hi: 0x04ff, Stride: 1},
	},
}

// WrapOrientation wraps every rotation-sensitive character in its own
// span: sideways for the fixed symbol set, upright for Greek and
// Cyrillic. Wrapping is per character so each glyph gets its own
// rotation context; adjacent matches yield adjacent spans.
func WrapOrientation(s string) string {
	var b strings.Builder
	changed := false
	for _, r := range s {
		switch {
		case sidewaysChars[r]:
			b.WriteString(sidewaysOpen)
			b.WriteRune(r)
			b.WriteString(spanClose)
			changed = true
		case unicode.Is(uprightBlocks, r):
			b.WriteString(uprightOpen)
			b.WriteRune(r)
			b.WriteString(spanClose)
			changed = true
		default:
			b.WriteRune(r)
		}
	}
	if !changed {
		return s
	}
	return b.String()
}
