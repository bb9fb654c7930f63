package parser

import (
	"strings"
	"testing"
)

func TestTextParser_BasicParagraphSplitting(t *testing.T) {
	input := "一段落目の一行目。\n一段落目の二行目。\n\n二段落目。\n\n三段落目。"
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", tree.Title)
	}
	if len(tree.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(tree.Children))
	}

	want := []string{
		"一段落目の一行目。\n一段落目の二行目。",
		"二段落目。",
		"三段落目。",
	}
	for i, w := range want {
		if tree.Children[i].Text != w {
			t.Errorf("child[%d]: expected %q, got %q", i, w, tree.Children[i].Text)
		}
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(tree.Children))
	}
}

func TestTextParser_NormalizesFullWidthASCII(t *testing.T) {
	// NFKC folds full-width digits so they become eligible for
	// tate-chu-yoko downstream.
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader("全角の１２です。"), "zen.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}
	if tree.Children[0].Text != "全角の12です。" {
		t.Errorf("got %q, want half-width digits", tree.Children[0].Text)
	}
}

func TestCleanTextStripsControls(t *testing.T) {
	got := cleanText("a\x00b\tc")
	if got != "ab\tc" {
		t.Errorf("got %q, want controls stripped but tab kept", got)
	}
}

func TestConvertTextToHTML(t *testing.T) {
	_, html, err := Convert(strings.NewReader("段落です。\n\n次です。"), "a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<p>段落です。</p>\n<p>次です。</p>\n"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}
