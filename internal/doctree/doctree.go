// Package doctree is the shared intermediate for input converters: a
// title plus an ordered tree of sections, ready to render as display
// HTML for the vertical-text transform.
package doctree

import (
	"fmt"
	"html"
	"strings"
)

// DocTree is the root of a converted document.
type DocTree struct {
	Title    string
	Children []*DocNode
}

// DocNode is a recursive section.
type DocNode struct {
	Title    string     // section heading, empty for plain blocks
	Level    int        // heading level 1..6; 0 means infer from depth
	Text     string     // paragraph text, blank-line separated
	Table    [][]string // tabular content; first row is the header
	Children []*DocNode
}

// RenderHTML flattens the tree into heading, paragraph and table
// markup. All text is escaped, so converter output is always
// parseable.
func (t *DocTree) RenderHTML() string {
	var b strings.Builder
	renderNodes(&b, t.Children, 1)
	return b.String()
}

func renderNodes(b *strings.Builder, nodes []*DocNode, depth int) {
	for _, n := range nodes {
		if n.Title != "" {
			level := n.Level
			if level < 1 {
				level = depth
			}
			if level > 6 {
				level = 6
			}
			fmt.Fprintf(b, "<h%d>%s</h%d>\n", level, html.EscapeString(n.Title), level)
		}
		if len(n.Table) > 0 {
			renderTable(b, n.Table)
		}
		for _, para := range strings.Split(n.Text, "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}
			b.WriteString("<p>")
			// Single newlines inside a paragraph become line breaks.
			for i, line := range strings.Split(para, "\n") {
				if i > 0 {
					b.WriteString("<br/>")
				}
				b.WriteString(html.EscapeString(line))
			}
			b.WriteString("</p>\n")
		}
		renderNodes(b, n.Children, depth+1)
	}
}

func renderTable(b *strings.Builder, rows [][]string) {
	b.WriteString("<table>\n")
	for i, row := range rows {
		cell := "td"
		if i == 0 {
			cell = "th"
		}
		b.WriteString("<tr>")
		for _, v := range row {
			fmt.Fprintf(b, "<%s>%s</%s>", cell, html.EscapeString(v), cell)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
}
