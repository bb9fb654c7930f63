package rules

import "testing"

func TestWrapDigitRuns(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
		desc     string
	}{
		{
			"12ああああ34ああ457あああ89", 3,
			`<span class="tcy">12</span>ああああ<span class="tcy">34</span>ああ<span class="tcy">457</span>あああ<span class="tcy">89</span>`,
			"runs of 2, 2, 3, 2 all wrapped at max 3",
		},
		{"1234あ", 2, "1234あ", "run longer than max left whole"},
		{"1234", 4, `<span class="tcy">1234</span>`, "run equal to max wrapped"},
		{"1あ2", 3, "1あ2", "single digits untouched"},
		{"あいう", 3, "あいう", "no digits"},
		{"12", 0, "12", "max 0 disables the rule"},
		{"12", 1, "12", "max 1 can never wrap"},
		{"前12後", 2, `前<span class="tcy">12</span>後`, "run bounded by multibyte text"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if got := WrapDigitRuns(test.input, test.max); got != test.expected {
				t.Errorf("WrapDigitRuns(%q, %d) = %q, want %q", test.input, test.max, got, test.expected)
			}
		})
	}
}

func TestWrapPunctPairs(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		desc     string
	}{
		{
			"!!ああああ!!!ああ!?あwhyあ??",
			`<span class="tcy">!!</span>ああああ!!!ああ<span class="tcy">!?</span>あwhyあ<span class="tcy">??</span>`,
			"exact pairs wrapped, triple left alone",
		},
		{"!", "!", "single mark untouched"},
		{"!!!!", "!!!!", "run of four untouched"},
		{"?!", `<span class="tcy">?!</span>`, "mixed pair wrapped"},
		{"ああ", "ああ", "no punctuation"},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			if got := WrapPunctPairs(test.input); got != test.expected {
				t.Errorf("WrapPunctPairs(%q) = %q, want %q", test.input, got, test.expected)
			}
		})
	}
}

func TestWrapOrientationSideways(t *testing.T) {
	got := WrapOrientation("÷∴")
	want := `<span class="sideways">÷</span><span class="sideways">∴</span>`
	if got != want {
		t.Errorf("WrapOrientation = %q, want %q", got, want)
	}
}

func TestWrapOrientationSidewaysSet(t *testing.T) {
	for _, r := range "÷∴≠≦≧∧∨＜＞‐－" {
		got := WrapOrientation(string(r))
		want := `<span class="sideways">` + string(r) + `</span>`
		if got != want {
			t.Errorf("WrapOrientation(%q) = %q, want %q", string(r), got, want)
		}
	}
}

func TestWrapOrientationUprightPerCharacter(t *testing.T) {
	// Adjacent letters come out as adjacent spans, never merged.
	got := WrapOrientation("αβ")
	want := `<span class="upright">α</span><span class="upright">β</span>`
	if got != want {
		t.Errorf("WrapOrientation = %q, want %q", got, want)
	}
	got = WrapOrientation("Яр")
	want = `<span class="upright">Я</span><span class="upright">р</span>`
	if got != want {
		t.Errorf("WrapOrientation = %q, want %q", got, want)
	}
}

func TestWrapOrientationLeavesOtherText(t *testing.T) {
	for _, s := range []string{"アあ漢 abc 123", "ハイフン-", ""} {
		if got := WrapOrientation(s); got != s {
			t.Errorf("WrapOrientation(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestApplyProtectsMaskedContent(t *testing.T) {
	unchanged := []string{
		"info@example21.com",
		"https://example.com/12?a=34",
		"https://example.com/&#8364;99",
		"&#48;&#49;",
	}
	for _, in := range unchanged {
		if got := Apply(in, 2, true); got != in {
			t.Errorf("Apply(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestApplyPunctuationIndependentOfDigitMax(t *testing.T) {
	got := Apply("12と!?と", 0, false)
	want := `12と<span class="tcy">!?</span>と`
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestApplyCombined(t *testing.T) {
	got := Apply("値は12÷3です", 2, true)
	want := `値は<span class="tcy">12</span><span class="sideways">÷</span>3です`
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}
