// Package walker applies the vertical-display text rules across a
// parsed HTML tree, skipping subtrees that must never be rewritten.
package walker

import (
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/lostandfound/tcy/internal/htmltree"
	"github.com/lostandfound/tcy/internal/rules"
)

// Elements whose text is never rewritten, children included.
var excludedTags = map[string]bool{
	"code": true,
	"pre":  true,
	"math": true,
	"svg":  true,
}

// Class markers that exclude an element and its subtree. Matching is
// substring containment, not token-exact, so class="tcytext" is
// excluded like class="tcy".
var excludedClassWords = []string{"tcy", "upright", "sideways"}

// Walker rewrites eligible text nodes in place.
type Walker struct {
	DigitMax    int
	Orientation bool
	Log         *slog.Logger
}

// Transform walks the subtree rooted at root in pre-order and rewrites
// every eligible text node. The exclusion test covers root and every
// ancestor up to the document, so a marker on html still suppresses
// rewriting below body.
func (w *Walker) Transform(root *html.Node) {
	for n := root; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && Excluded(n) {
			return
		}
	}
	w.walk(root)
}

func (w *Walker) walk(n *html.Node) {
	// Snapshot the child list: splicing replaces children while we
	// iterate.
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	for _, c := range children {
		switch c.Type {
		case html.TextNode:
			w.rewriteText(n, c)
		case html.ElementNode:
			if Excluded(c) {
				continue
			}
			w.walk(c)
		}
	}
}

// Excluded reports whether n is barred from processing by tag name or
// class marker. Ancestors are covered by the walk itself: an excluded
// element is never descended into.
func Excluded(n *html.Node) bool {
	if excludedTags[n.Data] {
		return true
	}
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, word := range excludedClassWords {
			if strings.Contains(a.Val, word) {
				return true
			}
		}
	}
	return false
}

// rewriteText runs one text node through the rule pipeline and splices
// the produced markup in its place. The replacement can turn one text
// node into several siblings (text mixed with wrapper spans).
func (w *Walker) rewriteText(parent, text *html.Node) {
	markup := rules.Apply(text.Data, w.DigitMax, w.Orientation)
	if markup == text.Data {
		return
	}
	nodes, err := htmltree.ParseFragment(markup)
	if err != nil {
		if w.Log != nil {
			w.Log.Warn("fragment parse failed, text left untouched", "error", err)
		}
		return
	}
	for _, nn := range nodes {
		parent.InsertBefore(nn, text)
	}
	parent.RemoveChild(text)
}
