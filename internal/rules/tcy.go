package rules

import "strings"

const (
	tcyOpen   = `<span class="tcy">`
	spanClose = `</span>`
)

// WrapDigitRuns wraps maximal ASCII digit runs of length 2 up to max
// in a tcy span. A run longer than max is left untouched in full,
// never split. max below 2 disables the rule.
func WrapDigitRuns(s string, max int) string {
	if max < 2 || !strings.ContainsAny(s, "0123456789") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c < '0' || c > '9' {
			b.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if n := j - i; n >= 2 && n <= max {
			b.WriteString(tcyOpen)
			b.WriteString(s[i:j])
			b.WriteString(spanClose)
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}

// WrapPunctPairs wraps runs of exactly two consecutive '!'/'?'
// characters (any mix) in a tcy span. Runs of one or of three and more
// are left alone.
func WrapPunctPairs(s string) string {
	if !strings.ContainsAny(s, "!?") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '!' && c != '?' {
			b.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(s) && (s[j] == '!' || s[j] == '?') {
			j++
		}
		if j-i == 2 {
			b.WriteString(tcyOpen)
			b.WriteString(s[i:j])
			b.WriteString(spanClose)
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}

// Apply runs the full rule set over one text run and returns the
// produced markup. Rules run in sequence over the literal spans only;
// the order is safe because the wrapper markup a rule inserts contains
// no character any later rule matches.
func Apply(text string, digitMax int, orientation bool) string {
	spans := Mask(text)
	for i := range spans {
		if spans[i].Protected {
			continue
		}
		t := WrapDigitRuns(spans[i].Text, digitMax)
		t = WrapPunctPairs(t)
		if orientation {
			t = WrapOrientation(t)
		}
		spans[i].Text = t
	}
	return Join(spans)
}
