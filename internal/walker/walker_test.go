package walker

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/lostandfound/tcy/internal/htmltree"
)

func rewrite(t *testing.T, in string, digit int, orientation bool) string {
	t.Helper()
	doc, err := htmltree.ParseDocument(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	body := htmltree.Body(doc)
	if body == nil {
		t.Fatal("no body element")
	}
	w := &Walker{DigitMax: digit, Orientation: orientation}
	w.Transform(body)
	out, err := htmltree.RenderChildren(body)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func TestRewritesTextNodes(t *testing.T) {
	got := rewrite(t, "<p>ああ12いい34</p>", 2, false)
	want := `<p>ああ<span class="tcy">12</span>いい<span class="tcy">34</span></p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRewritesNestedElements(t *testing.T) {
	got := rewrite(t, "<div><p>12</p><p><em>34</em>56</p></div>", 2, false)
	want := `<div><p><span class="tcy">12</span></p><p><em><span class="tcy">34</span></em><span class="tcy">56</span></p></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExcludedTags(t *testing.T) {
	for _, in := range []string{
		"<code>12</code>",
		"<pre>12</pre>",
		"<pre><b>12</b></pre>",
	} {
		if got := rewrite(t, in, 2, true); got != in {
			t.Errorf("rewrite(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestExcludedClassSubtree(t *testing.T) {
	// Several levels deep under an excluded class marker.
	in := `<div class="keep-tcy"><section><p>12</p></section></div>`
	if got := rewrite(t, in, 2, true); got != in {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestClassExclusionIsSubstring(t *testing.T) {
	// Containment, not token match: "uprightish" still excludes.
	in := `<div class="uprightish"><p>12</p></div>`
	if got := rewrite(t, in, 2, true); got != in {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestSiblingsAfterSpliceStillProcessed(t *testing.T) {
	// Splicing the first text node must not skip later siblings.
	got := rewrite(t, "<p>12<b>x</b>34</p>", 2, false)
	want := `<p><span class="tcy">12</span><b>x</b><span class="tcy">34</span></p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAncestorExclusionAboveWalkRoot(t *testing.T) {
	// A marker above the walk root must suppress the whole walk.
	doc, err := htmltree.ParseDocument(`<html class="tcy"><body><p>12</p></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	body := htmltree.Body(doc)
	if body == nil {
		t.Fatal("no body element")
	}
	w := &Walker{DigitMax: 2}
	w.Transform(body)
	out, err := htmltree.RenderChildren(body)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "<p>12</p>" {
		t.Errorf("got %q, want untouched content", out)
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	once := rewrite(t, "<p>12と÷とαと!?</p>", 2, true)
	twice := rewrite(t, once, 2, true)
	if twice != once {
		t.Errorf("second pass changed output:\n once: %q\ntwice: %q", once, twice)
	}
}

func TestExcludedUnit(t *testing.T) {
	tests := []struct {
		tag   string
		class string
		want  bool
	}{
		{"code", "", true},
		{"svg", "", true},
		{"math", "", true},
		{"p", "", false},
		{"p", "tcy", true},
		{"p", "tcytext", true},
		{"p", "note sideways-label", true},
		{"p", "normal", false},
	}
	for _, test := range tests {
		n := &html.Node{Type: html.ElementNode, Data: test.tag}
		if test.class != "" {
			n.Attr = []html.Attribute{{Key: "class", Val: test.class}}
		}
		if got := Excluded(n); got != test.want {
			t.Errorf("Excluded(<%s class=%q>) = %v, want %v", test.tag, test.class, got, test.want)
		}
	}
}
