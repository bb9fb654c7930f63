// Package parser converts supported manuscript formats into display
// HTML for the vertical-text transform.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lostandfound/tcy/internal/doctree"
)

// Parser converts raw document bytes into a DocTree.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.DocTree, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate tree-building parser for a filename.
// HTML input has no tree-building parser; Convert passes it through
// untouched.
func ForFile(filename string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Convert parses the named file and renders it as display HTML. HTML
// input passes through byte-for-byte so character references and
// existing markup stay intact for the transform.
func Convert(r io.Reader, filename string) (title, htmlOut string, err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".html" || ext == ".htm" {
		return convertHTML(r, filename)
	}

	p, err := ForFile(filename)
	if err != nil {
		return "", "", err
	}
	tree, err := p.Parse(r, filename)
	if err != nil {
		return "", "", err
	}
	return tree.Title, tree.RenderHTML(), nil
}
