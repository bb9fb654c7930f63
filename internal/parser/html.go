package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// convertHTML passes HTML manuscripts through untouched. The transform
// pipeline needs the original bytes, character references included, so
// no rewriting happens here; only the title is sniffed out from a copy.
func convertHTML(r io.Reader, filename string) (string, string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", "", fmt.Errorf("read html: %w", err)
	}

	title := strings.TrimSuffix(strings.TrimSuffix(filename, ".html"), ".htm")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(src)))
	if err == nil {
		if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
			title = t
		}
	}

	return title, string(src), nil
}
