// Package htmltree wraps golang.org/x/net/html with the guarantees the
// transform pipeline needs: character references survive parsing and
// rendering verbatim, and obviously broken top-level markup can be
// detected up front so callers fall back to the identity transform.
package htmltree

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	docPattern      = regexp.MustCompile(`(?i)<!doctype|<html[\s/>]`)
	unclosedPattern = regexp.MustCompile(`<[/!]?[A-Za-z][^<>]*$`)
)

// IsDocument reports whether the input carries document-level markup
// (a doctype or an html element) rather than a bare fragment.
func IsDocument(src string) bool {
	return docPattern.MatchString(src)
}

// HasUnclosedTag reports whether the input opens a tag it never
// closes, e.g. "<div>テスト</div". x/net/html recovers from any input,
// so this pre-check is how unusable top-level markup is detected.
// Loose text like "a < b" does not trigger it.
func HasUnclosedTag(src string) bool {
	return unclosedPattern.MatchString(src)
}

// x/net/html decodes character references while tokenizing and escapes
// text again while rendering, which would corrupt references the rules
// must see verbatim. Escaping every ampersand before parsing leaves
// reference source text intact in the decoded tree; rendering escapes
// those ampersands back, and restoreRefs undoes exactly that. Raw-text
// elements (script, style) are neither decoded nor re-escaped by the
// parser, so the rewrite is symmetric there as well.
func preserveRefs(src string) string {
	return strings.ReplaceAll(src, "&", "&amp;")
}

func restoreRefs(out string) string {
	return strings.ReplaceAll(out, "&amp;", "&")
}

// ParseDocument parses markup into a document tree, character
// references preserved verbatim in text and attribute values.
func ParseDocument(src string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(preserveRefs(src)))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// ParseFragment parses fragment markup in a div context and returns
// the detached child nodes, ready for splicing.
func ParseFragment(src string) ([]*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(preserveRefs(src)), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	return nodes, nil
}

// Render serializes the subtree rooted at n, restoring preserved
// character references.
func Render(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return restoreRefs(b.String()), nil
}

// RenderChildren serializes the children of n in document order. Used
// for fragment input, where the synthesized html/head/body wrapper
// must not leak into the output.
func RenderChildren(n *html.Node) (string, error) {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
	}
	return restoreRefs(b.String()), nil
}

// Body returns the body element of a parsed document, or nil.
func Body(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := Body(c); b != nil {
			return b
		}
	}
	return nil
}
