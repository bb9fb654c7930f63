package doctree

import (
	"strings"
	"testing"
)

func TestRenderHTMLHeadingsAndParagraphs(t *testing.T) {
	tree := &DocTree{
		Title: "doc",
		Children: []*DocNode{
			{
				Title: "第一章",
				Level: 1,
				Text:  "最初の段落。\n\n次の段落。",
				Children: []*DocNode{
					{Title: "第一節", Level: 2, Text: "本文です。"},
				},
			},
		},
	}
	got := tree.RenderHTML()
	want := "<h1>第一章</h1>\n<p>最初の段落。</p>\n<p>次の段落。</p>\n<h2>第一節</h2>\n<p>本文です。</p>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHTMLEscapesText(t *testing.T) {
	tree := &DocTree{Children: []*DocNode{{Text: "a & b <c>"}}}
	got := tree.RenderHTML()
	if !strings.Contains(got, "a &amp; b &lt;c&gt;") {
		t.Errorf("text not escaped: %q", got)
	}
}

func TestRenderHTMLLineBreaks(t *testing.T) {
	tree := &DocTree{Children: []*DocNode{{Text: "一行目\n二行目"}}}
	got := tree.RenderHTML()
	want := "<p>一行目<br/>二行目</p>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHTMLInfersLevelFromDepth(t *testing.T) {
	tree := &DocTree{
		Children: []*DocNode{
			{
				Title: "外",
				Children: []*DocNode{
					{Title: "内"},
				},
			},
		},
	}
	got := tree.RenderHTML()
	if !strings.Contains(got, "<h1>外</h1>") || !strings.Contains(got, "<h2>内</h2>") {
		t.Errorf("levels not inferred: %q", got)
	}
}

func TestRenderHTMLTable(t *testing.T) {
	tree := &DocTree{
		Children: []*DocNode{
			{Table: [][]string{{"名前", "数"}, {"ほん", "12"}}},
		},
	}
	got := tree.RenderHTML()
	want := "<table>\n<tr><th>名前</th><th>数</th></tr>\n<tr><td>ほん</td><td>12</td></tr>\n</table>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
