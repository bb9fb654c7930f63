package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/lostandfound/tcy/internal/doctree"
)

// CSVParser handles CSV files. The whole file becomes one table node;
// the first row is treated as the header.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".csv"),
	}
	if len(records) == 0 {
		return tree, nil
	}

	for _, row := range records {
		for i, cell := range row {
			row[i] = cleanText(cell)
		}
	}
	tree.Children = []*doctree.DocNode{{Table: records}}
	return tree, nil
}
